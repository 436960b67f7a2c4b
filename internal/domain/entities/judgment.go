package entities

// Judgment is the outcome of comparing a meeting summary against an
// organization's goals. Ephemeral; consumed immediately to decide on
// notification, never persisted.
type Judgment struct {
	IsRelated bool   `json:"is_related"`
	Rationale string `json:"rationale,omitempty"`
}
