package pipeline

import "time"

// MeetingResponse is the admin-surface view of a stored meeting
type MeetingResponse struct {
	TranscriptID    string    `json:"transcript_id"`
	Title           string    `json:"title"`
	OrganizationKey string    `json:"pulse_id"`
	Summary         string    `json:"summary"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// RunResponse reports the outcome of a manually triggered run
type RunResponse struct {
	Relations  int    `json:"relations"`
	Meetings   int    `json:"meetings"`
	Skipped    int    `json:"skipped"`
	Completed  int    `json:"completed"`
	Notified   int    `json:"notified"`
	Failed     int    `json:"failed"`
	DurationMs int64  `json:"duration_ms"`
	Error      string `json:"error,omitempty"`
}
