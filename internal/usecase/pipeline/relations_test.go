package pipeline

import (
	"testing"

	"github.com/pulsehq/meeting-relevance/internal/domain/entities"
)

func TestBuildRelations_OneRelationPerIntegration(t *testing.T) {
	goals := []entities.Goal{
		{Name: "Grow revenue", Description: "Increase ARR by 20%", Type: "objectives", OrganizationKey: "org1"},
		{Name: "Ship v2", Description: "Launch the v2 platform", Type: "objectives", OrganizationKey: "org2"},
		{Name: "Reduce churn", Description: "", Type: "objectives", OrganizationKey: "org1"},
	}
	integrations := []entities.Integration{
		{OrganizationKey: "org1", UserID: "u1", APIKey: "K1", Type: "fireflies"},
		{OrganizationKey: "org2", UserID: "u2", APIKey: "K2", Type: "fireflies"},
		{OrganizationKey: "org3", UserID: "u3", APIKey: "K3", Type: "fireflies"},
	}

	relations := BuildRelations(goals, integrations)

	if len(relations) != len(integrations) {
		t.Fatalf("expected %d relations, got %d", len(integrations), len(relations))
	}

	org1 := relations[0]
	if org1.OrganizationKey != "org1" || org1.APIKey != "K1" || org1.UserID != "u1" {
		t.Errorf("unexpected relation for org1: %+v", org1)
	}
	if len(org1.Goals) != 2 {
		t.Fatalf("expected 2 goals for org1, got %d", len(org1.Goals))
	}
	// Goal lists preserve encounter order.
	if org1.Goals[0].Name != "Grow revenue" || org1.Goals[1].Name != "Reduce churn" {
		t.Errorf("goal order not preserved: %+v", org1.Goals)
	}

	if len(relations[1].Goals) != 1 || relations[1].Goals[0].Name != "Ship v2" {
		t.Errorf("unexpected goals for org2: %+v", relations[1].Goals)
	}

	// A credential with no matching goals still yields a relation.
	if len(relations[2].Goals) != 0 {
		t.Errorf("expected empty goal list for org3, got %+v", relations[2].Goals)
	}
	if relations[2].HasGoals() {
		t.Error("org3 relation should report no goals")
	}
}

func TestBuildRelations_EmptyInputs(t *testing.T) {
	if got := BuildRelations(nil, nil); len(got) != 0 {
		t.Errorf("expected no relations, got %d", len(got))
	}

	goals := []entities.Goal{{Name: "g", OrganizationKey: "org1"}}
	if got := BuildRelations(goals, nil); len(got) != 0 {
		t.Errorf("goals without integrations should yield no relations, got %d", len(got))
	}
}
