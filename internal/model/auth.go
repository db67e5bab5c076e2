package model

// AccessToken is the object embedded in JWT access tokens issued by the
// external auth service. The core only reads the user id and role from it.
type AccessToken struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

const (
	RoleUser     = "USER"
	RoleOperator = "OPERATOR"
	RoleAuditor  = "AUDITOR"
	RoleAdmin    = "ADMIN"
)
