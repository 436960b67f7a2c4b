package repository

import (
	"context"

	"gorm.io/gorm"

	apperrors "github.com/pulsehq/meeting-relevance/errors"
	"github.com/pulsehq/meeting-relevance/internal/domain/entities"
	repo "github.com/pulsehq/meeting-relevance/internal/domain/repositories"
)

type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a goal repository backed by GORM
func NewGoalRepository(db *gorm.DB) repo.GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) ListByType(ctx context.Context, goalType string) ([]entities.Goal, error) {
	var goals []entities.Goal
	if err := r.db.WithContext(ctx).
		Where("type = ?", goalType).
		Order("pulse_id ASC, name ASC").
		Find(&goals).Error; err != nil {
		return nil, apperrors.ErrStore("list goals", err)
	}
	return goals, nil
}
