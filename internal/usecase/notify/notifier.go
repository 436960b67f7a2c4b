package notify

import (
	"context"

	"github.com/pulsehq/meeting-relevance/internal/domain/entities"
)

// Notifier delivers a summary notification for a meeting judged relevant.
// Delivery is best-effort: a failure must never affect the meeting's
// committed durable state.
type Notifier interface {
	Notify(ctx context.Context, meeting *entities.Meeting, judgment entities.Judgment) error
}
