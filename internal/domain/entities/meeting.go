package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MeetingStatus represents the lifecycle status of an ingested meeting
type MeetingStatus string

const (
	MeetingStatusPending   MeetingStatus = "PENDING"   // Stored before classification begins
	MeetingStatusCompleted MeetingStatus = "COMPLETED" // Classification finished, final summary stored
)

// Meeting represents one ingested meeting transcript. transcript_id is the
// idempotence key: re-processing the same transcript updates the row
// instead of duplicating it.
type Meeting struct {
	ID              uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TranscriptID    string         `json:"transcript_id" gorm:"type:varchar(255);not null;uniqueIndex"`
	Title           string         `json:"title" gorm:"type:varchar(512)"`
	UserID          string         `json:"user_id" gorm:"type:varchar(255)"`
	OrganizationKey string         `json:"pulse_id" gorm:"column:pulse_id;type:varchar(255);not null;index"`
	Summary         string         `json:"summary" gorm:"type:text"`
	Details         datatypes.JSON `json:"details,omitempty" gorm:"type:jsonb"`
	Status          MeetingStatus  `json:"status" gorm:"type:varchar(50);not null;index;default:'PENDING'"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// NewMeeting creates a meeting in the PENDING state
func NewMeeting(transcriptID, title, userID, organizationKey, summary string) *Meeting {
	return &Meeting{
		ID:              uuid.New(),
		TranscriptID:    transcriptID,
		Title:           title,
		UserID:          userID,
		OrganizationKey: organizationKey,
		Summary:         summary,
		Status:          MeetingStatusPending,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
}

// MarkCompleted transitions the meeting to COMPLETED with its final summary
func (m *Meeting) MarkCompleted(summary string) {
	m.Status = MeetingStatusCompleted
	if summary != "" {
		m.Summary = summary
	}
	m.UpdatedAt = time.Now()
}

// TableName specifies the table name for GORM
func (Meeting) TableName() string {
	return "meetings"
}
