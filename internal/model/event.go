package model

type Event struct {
	ID                         string         `json:"id"`
	Title                      string         `json:"title"`
	Description                string         `json:"description"`
	StartDate                  string         `json:"start_date"`
	EndDate                    string         `json:"end_date"`
	Status                     string         `json:"status"`
	ConditionType              string         `json:"condition_type"`
	ConditionValue             map[string]any `json:"condition_value"`
	AutoReward                 bool           `json:"auto_reward"`
	AllowMultipleParticipation bool           `json:"allow_multiple_participation"`
	ParticipantCount           int64          `json:"participant_count"`
	MaxParticipants            int64          `json:"max_participants"`
	CreatedBy                  string         `json:"created_by"`
	UpdatedBy                  string         `json:"updated_by"`
}

type CreateEventRequest struct {
	Title                      string         `json:"title"`
	Description                string         `json:"description"`
	StartDate                  string         `json:"start_date"`
	EndDate                    string         `json:"end_date"`
	Status                     string         `json:"status"`
	ConditionType              string         `json:"condition_type"`
	ConditionValue             map[string]any `json:"condition_value"`
	AutoReward                 bool           `json:"auto_reward"`
	AllowMultipleParticipation bool           `json:"allow_multiple_participation"`
	MaxParticipants            int64          `json:"max_participants"`
}

type CreateEventResponse struct {
	Event Event `json:"event"`
}

type UpdateEventRequest struct {
	ID string `json:"id"`

	Title           string         `json:"title"`
	Description     string         `json:"description"`
	StartDate       string         `json:"start_date"`
	EndDate         string         `json:"end_date"`
	Status          string         `json:"status"`
	ConditionValue  map[string]any `json:"condition_value"`
	MaxParticipants *int64         `json:"max_participants"`
}

type UpdateEventResponse struct {
	Event Event `json:"event"`
}

type GetEventRequest struct {
	ID string `form:"id" json:"id"`
}

type GetEventResponse struct {
	Event Event `json:"event"`
}

type GetEventsRequest struct {
	Status string `form:"status" json:"status"`
	Offset int    `form:"offset" json:"offset"`
	Limit  int    `form:"limit" json:"limit"`
}

type GetEventsResponse struct {
	Events []Event `json:"events"`
}

type GetActiveEventsRequest struct{}

type GetActiveEventsResponse struct {
	Events []Event `json:"events"`
}
