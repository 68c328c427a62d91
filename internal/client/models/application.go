package models

// Application is an employee's submission against a posting.
type Application struct {
	ID             int64             `json:"id"`
	EmployeeEmail  string            `json:"employeeEmail"`
	EmployeeName   string            `json:"employeeName"`
	JobID          int64             `json:"jobId"`
	JobTitle       string            `json:"jobTitle"`
	CompanyName    string            `json:"companyName"`
	RecruiterEmail string            `json:"recruiterEmail"`
	AppliedDate    string            `json:"appliedDate"`
	Status         ApplicationStatus `json:"status"`
}

// ApplyRequest is the body of POST /applications/apply.
type ApplyRequest struct {
	EmployeeEmail  string `json:"employeeEmail"`
	JobID          int64  `json:"jobId"`
	RecruiterEmail string `json:"recruiterEmail"`
}

// StatusUpdateRequest is the body of PUT /applications/status.
type StatusUpdateRequest struct {
	ApplicationID int64             `json:"applicationId"`
	Status        ApplicationStatus `json:"status"`
}
