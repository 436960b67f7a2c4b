package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "github.com/pulsehq/meeting-relevance/errors"
	"github.com/pulsehq/meeting-relevance/internal/domain/entities"
	repo "github.com/pulsehq/meeting-relevance/internal/domain/repositories"
)

type meetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a meeting repository backed by GORM
func NewMeetingRepository(db *gorm.DB) repo.MeetingRepository {
	return &meetingRepository{db: db}
}

// Upsert performs a single insert-or-update keyed on transcript_id. Wrapped
// in a transaction so a failure rolls the statement back and the meeting
// keeps its previous durable state.
func (r *meetingRepository) Upsert(ctx context.Context, meeting *entities.Meeting) error {
	if meeting == nil {
		return entities.ErrNilMeeting
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "transcript_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"status", "summary", "details", "updated_at",
			}),
		}).Create(meeting).Error
	})
	if err != nil {
		return apperrors.ErrPersistence(meeting.TranscriptID, err)
	}
	return nil
}

func (r *meetingRepository) GetByTranscriptID(ctx context.Context, transcriptID string) (*entities.Meeting, error) {
	var meeting entities.Meeting
	if err := r.db.WithContext(ctx).
		Where("transcript_id = ?", transcriptID).
		First(&meeting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrMeetingNotFound
		}
		return nil, apperrors.ErrStore("get meeting", err)
	}
	return &meeting, nil
}
