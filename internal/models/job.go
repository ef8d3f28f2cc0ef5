package models

type Job struct {
	BaseModel
	Company     string  `json:"company"`
	Title       string  `gorm:"not null" json:"title"`
	JobType     JobType `gorm:"type:varchar(20)" json:"type"`
	Location    string  `json:"location"`
	Salary      string  `json:"salary"`
	Description string  `json:"description"`

	// A job without an owning employer is invalid.
	EmployerID string `gorm:"not null;index" json:"employer"`
	Employer   *User  `gorm:"foreignKey:EmployerID" json:"-"`

	// Projection of the standalone applications table, loaded on demand.
	Applications []Application `gorm:"foreignKey:JobID" json:"applications,omitempty"`
}
