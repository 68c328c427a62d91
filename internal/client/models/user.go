package models

// UserSummary is the immutable snapshot of the signed-in user taken at login
// time. It may go stale relative to server state until the next login.
type UserSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// User is an account row as the admin endpoints return it.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	IsActive bool   `json:"isActive"`
}

// SystemStatus holds the admin dashboard totals.
type SystemStatus struct {
	TotalUsers        int `json:"totalUsers"`
	TotalJobs         int `json:"totalJobs"`
	TotalApplications int `json:"totalApplications"`
	ActiveUsers       int `json:"activeUsers"`
}
