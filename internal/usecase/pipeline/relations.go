package pipeline

import (
	"github.com/pulsehq/meeting-relevance/internal/domain/entities"
)

// BuildRelations joins each integration credential to the goals sharing
// its pulse id. Pure: one pass over goals to index them, then exactly one
// Relation per credential. A credential with no matching goals still
// yields a Relation with an empty goal list; goal order follows encounter
// order.
func BuildRelations(goals []entities.Goal, integrations []entities.Integration) []entities.Relation {
	byOrg := make(map[string][]entities.GoalSummary, len(goals))
	for _, g := range goals {
		byOrg[g.OrganizationKey] = append(byOrg[g.OrganizationKey], g.Summary())
	}

	relations := make([]entities.Relation, 0, len(integrations))
	for _, i := range integrations {
		relations = append(relations, entities.Relation{
			OrganizationKey: i.OrganizationKey,
			UserID:          i.UserID,
			APIKey:          i.APIKey,
			Goals:           byOrg[i.OrganizationKey],
		})
	}
	return relations
}
