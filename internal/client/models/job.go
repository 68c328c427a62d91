package models

// JobPosting is a listed position. Created by a recruiter or admin, read by
// everyone, never mutated client-side. Dates travel as "YYYY-MM-DD" strings.
type JobPosting struct {
	ID             int64   `json:"id"`
	JobTitle       string  `json:"jobTitle"`
	CompanyName    string  `json:"companyName"`
	JobType        JobType `json:"jobType"`
	JobDescription string  `json:"jobDescription"`
	JobLocation    string  `json:"jobLocation"`
	PostedDate     string  `json:"postedDate"`
	DeadLineDate   string  `json:"deadLineDate"`
	RecruiterEmail string  `json:"recruiterEmail"`
}

// NewJobPosting carries the fields a recruiter or admin submits when posting.
type NewJobPosting struct {
	JobTitle       string  `json:"jobTitle"`
	CompanyName    string  `json:"companyName"`
	JobType        JobType `json:"jobType"`
	JobDescription string  `json:"jobDescription"`
	JobLocation    string  `json:"jobLocation"`
	PostedDate     string  `json:"postedDate"`
	DeadLineDate   string  `json:"deadLineDate"`
	RecruiterEmail string  `json:"recruiterEmail"`
}
