package models

type EmployerProfile struct {
	BaseModel
	UserID      string `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	CompanyName string `gorm:"not null" json:"company_name"`
	Logo        string `json:"logo"`
	Description string `json:"description"`
	Website     string `json:"website"`
	Phone       string `json:"phone"`
	Location    string `json:"location"`
}
