package models

// EmployerProfile is the company sub-record attached to an employer user.
type EmployerProfile struct {
	BaseModel
	UserID       string `gorm:"not null;uniqueIndex" json:"user_id"`
	CompanyName  string `json:"name"`
	CompanyID    string `json:"company_id"` // external registry id
	Website      string `json:"website"`
	ContactEmail string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Logo         string `json:"logo"`
	Description  string `json:"description"`
	Location     string `json:"location"`
}
