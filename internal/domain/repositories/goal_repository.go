package repositories

import (
	"context"

	"github.com/pulsehq/meeting-relevance/internal/domain/entities"
)

// GoalRepository defines read-only access to goal/strategy records
type GoalRepository interface {
	// ListByType returns all goals with the given type discriminator.
	// An empty result is an empty slice, not an error.
	ListByType(ctx context.Context, goalType string) ([]entities.Goal, error)
}
