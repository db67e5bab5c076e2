package model

type Reward struct {
	ID             string         `json:"id"`
	EventID        string         `json:"event_id"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Type           string         `json:"type"`
	Value          string         `json:"value"`
	Metadata       map[string]any `json:"metadata"`
	TotalQuantity  int64          `json:"total_quantity"`
	IssuedQuantity int64          `json:"issued_quantity"`
	ExpiryDate     string         `json:"expiry_date,omitempty"`
	CreatedBy      string         `json:"created_by"`
	UpdatedBy      string         `json:"updated_by"`
}

type CreateRewardRequest struct {
	EventID       string         `json:"event_id"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Type          string         `json:"type"`
	Value         string         `json:"value"`
	Metadata      map[string]any `json:"metadata"`
	TotalQuantity int64          `json:"total_quantity"`
	ExpiryDate    string         `json:"expiry_date"`
}

type CreateRewardResponse struct {
	Reward Reward `json:"reward"`
}

type UpdateRewardRequest struct {
	ID string `json:"id"`

	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Value         string         `json:"value"`
	Metadata      map[string]any `json:"metadata"`
	TotalQuantity *int64         `json:"total_quantity"`
	ExpiryDate    string         `json:"expiry_date"`
}

type UpdateRewardResponse struct {
	Reward Reward `json:"reward"`
}

type GetRewardsRequest struct {
	EventID string `form:"event_id" json:"event_id"`
}

type GetRewardsResponse struct {
	Rewards []Reward `json:"rewards"`
}
