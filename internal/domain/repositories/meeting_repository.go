package repositories

import (
	"context"

	"github.com/pulsehq/meeting-relevance/internal/domain/entities"
)

// MeetingRepository defines persistence operations for meetings
type MeetingRepository interface {
	// Upsert inserts the meeting or, when its transcript_id already
	// exists, overwrites status, summary and details. Transactional:
	// a failure leaves the previous durable state untouched.
	Upsert(ctx context.Context, meeting *entities.Meeting) error

	// GetByTranscriptID returns the meeting for a transcript id, or
	// entities.ErrMeetingNotFound
	GetByTranscriptID(ctx context.Context, transcriptID string) (*entities.Meeting, error)
}
