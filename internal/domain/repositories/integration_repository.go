package repositories

import (
	"context"

	"github.com/pulsehq/meeting-relevance/internal/domain/entities"
)

// IntegrationRepository defines read-only access to integration credentials
type IntegrationRepository interface {
	// ListByType returns all credentials for the given integration type
	ListByType(ctx context.Context, integrationType string) ([]entities.Integration, error)
}
