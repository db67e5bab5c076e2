package model

type Participation struct {
	ID                 string         `json:"id"`
	EventID            string         `json:"event_id"`
	UserID             string         `json:"user_id"`
	Status             string         `json:"status"`
	ParticipatedAt     string         `json:"participated_at"`
	VerificationData   map[string]any `json:"verification_data"`
	AdditionalData     map[string]any `json:"additional_data"`
	IsRewardRequested  bool           `json:"is_reward_requested"`
	RewardRequestID    string         `json:"reward_request_id,omitempty"`
	ParticipationCount int            `json:"participation_count"`
}

type CreateParticipationRequest struct {
	EventID          string         `json:"event_id"`
	VerificationData map[string]any `json:"verification_data"`
	AdditionalData   map[string]any `json:"additional_data"`
}

type CreateParticipationResponse struct {
	Participation Participation `json:"participation"`
}

type GetParticipationsRequest struct {
	EventID string `form:"event_id" json:"event_id"`
	UserID  string `form:"user_id" json:"user_id"`
	Offset  int    `form:"offset" json:"offset"`
	Limit   int    `form:"limit" json:"limit"`
}

type GetParticipationsResponse struct {
	Participations []Participation `json:"participations"`
}

type GetParticipationStatsRequest struct {
	EventID string `form:"event_id" json:"event_id"`
}

type GetParticipationStatsResponse struct {
	TotalParticipations int64            `json:"total_participations"`
	UniqueParticipants  int64            `json:"unique_participants"`
	ParticipationsByDay map[string]int64 `json:"participations_by_day"`
	RewardRequestRate   float64          `json:"reward_request_rate"`
	SuccessRate         float64          `json:"success_rate"`
}
