package model

type UserReward struct {
	ID          string         `json:"id"`
	EventID     string         `json:"event_id"`
	RewardID    string         `json:"reward_id"`
	RequestID   string         `json:"request_id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Type        string         `json:"type"`
	Value       string         `json:"value"`
	Metadata    map[string]any `json:"metadata"`
	Status      string         `json:"status"`
	ExpiryDate  string         `json:"expiry_date,omitempty"`
	UsedAt      string         `json:"used_at,omitempty"`
}

type GetMyRewardsRequest struct{}

type GetMyRewardsResponse struct {
	UserRewards []UserReward `json:"user_rewards"`
}
