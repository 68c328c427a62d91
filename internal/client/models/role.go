// Package models defines client-side data models mirroring the Job Platform
// wire format. All entities are owned by the remote service; the client holds
// transient, re-fetched copies.
package models

// Role determines which views are reachable for a signed-in user.
type Role string

const (
	RoleEmployee  Role = "EMPLOYEE"
	RoleRecruiter Role = "RECRUITER"
	RoleAdmin     Role = "ADMIN"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleEmployee, RoleRecruiter, RoleAdmin:
		return true
	}
	return false
}

// JobType classifies a posting's employment kind.
type JobType string

const (
	JobTypeFullTime   JobType = "FULL_TIME"
	JobTypePartTime   JobType = "PART_TIME"
	JobTypeContract   JobType = "CONTRACT"
	JobTypeInternship JobType = "INTERNSHIP"
)

// ApplicationStatus tracks an application through its lifecycle. Transitions
// are PENDING→ACCEPTED or PENDING→REJECTED, performed by the owning recruiter
// or an admin.
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "PENDING"
	StatusAccepted ApplicationStatus = "ACCEPTED"
	StatusRejected ApplicationStatus = "REJECTED"
)
