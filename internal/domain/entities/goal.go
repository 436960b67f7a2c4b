package entities

// Goal represents an organizational goal or strategy record. Read-only
// within the pipeline; scoped to one workspace via the pulse id.
type Goal struct {
	Name            string `json:"name" gorm:"type:varchar(255);not null"`
	Description     string `json:"description" gorm:"type:text"`
	Type            string `json:"type" gorm:"type:varchar(50);index"`
	OrganizationKey string `json:"pulse_id" gorm:"column:pulse_id;type:varchar(255);not null;index"`
}

// TableName specifies the table name for GORM
func (Goal) TableName() string {
	return "goals"
}

// GoalSummary is the goal projection handed to the relevance classifier
type GoalSummary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Summary returns the classifier projection of the goal
func (g Goal) Summary() GoalSummary {
	return GoalSummary{Name: g.Name, Description: g.Description}
}
