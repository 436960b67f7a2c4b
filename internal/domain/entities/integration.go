package entities

// Integration represents an API credential for an external integration,
// one per workspace per integration type. Read-only within the pipeline.
type Integration struct {
	OrganizationKey string `json:"pulse_id" gorm:"column:pulse_id;type:varchar(255);not null;index"`
	UserID          string `json:"user_id" gorm:"type:varchar(255)"`
	APIKey          string `json:"-" gorm:"column:api_key;type:text;not null"`
	Type            string `json:"type" gorm:"type:varchar(50);index"`
}

// TableName specifies the table name for GORM
func (Integration) TableName() string {
	return "integrations"
}
