package models

// EmployeeProfile is the editable subset of an employee's attributes.
// Email is immutable once set; the save endpoint uses it as the row key.
type EmployeeProfile struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	Skills     string `json:"skills"`
	Experience string `json:"experience"`
}

// RecruiterProfile is the editable subset of a recruiter's attributes.
type RecruiterProfile struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	CompanyName    string `json:"companyName"`
	CompanyAddress string `json:"companyAddress"`
}
