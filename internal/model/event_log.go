package model

type EventLog struct {
	ID        int64          `json:"id"`
	CreatedAt string         `json:"created_at"`
	LogType   string         `json:"log_type"`
	ActorID   string         `json:"actor_id"`
	EventID   string         `json:"event_id,omitempty"`
	RewardID  string         `json:"reward_id,omitempty"`
	RequestID string         `json:"request_id,omitempty"`
	Details   map[string]any `json:"details"`
}

type GetEventLogsRequest struct {
	EventID string `form:"event_id" json:"event_id"`
	LogType string `form:"log_type" json:"log_type"`
	Offset  int    `form:"offset" json:"offset"`
	Limit   int    `form:"limit" json:"limit"`
}

type GetEventLogsResponse struct {
	EventLogs []EventLog `json:"event_logs"`
}
