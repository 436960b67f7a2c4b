package entities

// Relation joins one integration credential to the goals sharing its
// pulse id. Built once per run, never persisted. A credential with no
// matching goals still yields a Relation with an empty goal list.
type Relation struct {
	OrganizationKey string        `json:"pulse_id"`
	UserID          string        `json:"user_id"`
	APIKey          string        `json:"-"`
	Goals           []GoalSummary `json:"goals"`
}

// HasGoals reports whether the relation carries any goals to classify against
func (r Relation) HasGoals() bool {
	return len(r.Goals) > 0
}

// Credential returns the integration credential the relation was built from,
// in the shape the meeting source expects.
func (r Relation) Credential() Integration {
	return Integration{
		OrganizationKey: r.OrganizationKey,
		UserID:          r.UserID,
		APIKey:          r.APIKey,
	}
}
