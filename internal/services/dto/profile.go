package dto

type UpsertEmployerProfileRequest struct {
	CompanyName string `json:"company_name" validate:"required,min=2,max=200"`
	Logo        string `json:"logo" validate:"omitempty,url"`
	Description string `json:"description" validate:"omitempty,max=5000"`
	Website     string `json:"website" validate:"omitempty,url"`
	Phone       string `json:"phone" validate:"omitempty,max=30"`
	Location    string `json:"location" validate:"omitempty,max=200"`
}

type UpsertJobSeekerProfileRequest struct {
	FullName   string   `json:"full_name" validate:"required,min=2,max=100"`
	Phone      string   `json:"phone" validate:"omitempty,max=30"`
	Skills     []string `json:"skills" validate:"omitempty,dive,min=1,max=60"`
	Education  string   `json:"education" validate:"omitempty,max=2000"`
	Experience string   `json:"experience" validate:"omitempty,max=5000"`
	ResumeURL  string   `json:"resume_url" validate:"omitempty,url"`
}
