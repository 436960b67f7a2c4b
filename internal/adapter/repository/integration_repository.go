package repository

import (
	"context"

	"gorm.io/gorm"

	apperrors "github.com/pulsehq/meeting-relevance/errors"
	"github.com/pulsehq/meeting-relevance/internal/domain/entities"
	repo "github.com/pulsehq/meeting-relevance/internal/domain/repositories"
)

type integrationRepository struct {
	db *gorm.DB
}

// NewIntegrationRepository creates an integration repository backed by GORM
func NewIntegrationRepository(db *gorm.DB) repo.IntegrationRepository {
	return &integrationRepository{db: db}
}

func (r *integrationRepository) ListByType(ctx context.Context, integrationType string) ([]entities.Integration, error) {
	var integrations []entities.Integration
	if err := r.db.WithContext(ctx).
		Where("type = ?", integrationType).
		Order("pulse_id ASC").
		Find(&integrations).Error; err != nil {
		return nil, apperrors.ErrStore("list integrations", err)
	}
	return integrations, nil
}
