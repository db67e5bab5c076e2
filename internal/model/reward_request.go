package model

type RewardRequest struct {
	ID               string         `json:"id"`
	EventID          string         `json:"event_id"`
	UserID           string         `json:"user_id"`
	RewardIDs        []string       `json:"reward_ids"`
	Status           string         `json:"status"`
	VerificationData map[string]any `json:"verification_data"`
	ApprovedAt       string         `json:"approved_at,omitempty"`
	IssuedAt         string         `json:"issued_at,omitempty"`
	RejectedReason   string         `json:"rejected_reason,omitempty"`
	ProcessedBy      string         `json:"processed_by,omitempty"`
}

type RequestRewardsRequest struct {
	EventID          string         `json:"event_id"`
	RewardIDs        []string       `json:"reward_ids"`
	VerificationData map[string]any `json:"verification_data"`
}

type RequestRewardsResponse struct {
	RewardRequest RewardRequest `json:"reward_request"`
}

type ReviewRewardRequestRequest struct {
	ID             string `json:"id"`
	Status         string `json:"status"`
	RejectedReason string `json:"rejected_reason"`
}

type ReviewRewardRequestResponse struct {
	RewardRequest RewardRequest `json:"reward_request"`
}

type CancelRewardRequestRequest struct {
	ID string `json:"id"`
}

type CancelRewardRequestResponse struct {
	RewardRequest RewardRequest `json:"reward_request"`
}

type GetRewardRequestRequest struct {
	ID string `form:"id" json:"id"`
}

type GetRewardRequestResponse struct {
	RewardRequest RewardRequest `json:"reward_request"`
}

type GetMyRewardRequestsRequest struct {
	EventID string `form:"event_id" json:"event_id"`
	Offset  int    `form:"offset" json:"offset"`
	Limit   int    `form:"limit" json:"limit"`
}

type GetMyRewardRequestsResponse struct {
	RewardRequests []RewardRequest `json:"reward_requests"`
}

type GetRewardRequestsRequest struct {
	EventID string `form:"event_id" json:"event_id"`
	UserID  string `form:"user_id" json:"user_id"`
	Status  string `form:"status" json:"status"`
	Offset  int    `form:"offset" json:"offset"`
	Limit   int    `form:"limit" json:"limit"`
}

type GetRewardRequestsResponse struct {
	RewardRequests []RewardRequest `json:"reward_requests"`
}
