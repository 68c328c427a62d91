// Package guard decides whether a view may be rendered for the current
// authentication state. Authorization lives in one capability table checked
// at this boundary instead of per-view role comparisons.
package guard

import (
	"github.com/jobdeck/jobdeck/internal/client/auth"
	"github.com/jobdeck/jobdeck/internal/client/models"
)

// View names a screen the client can render.
type View string

const (
	ViewHome     View = "home"
	ViewListings View = "listings"
	ViewDetails  View = "details"
	ViewChat     View = "chat"

	ViewEmployeeDashboard  View = "employee/dashboard"
	ViewEmployeeProfile    View = "employee/profile"
	ViewRecruiterDashboard View = "recruiter/dashboard"
	ViewRecruiterProfile   View = "recruiter/profile"
	ViewAdminDashboard     View = "admin/dashboard"
)

// requiredRole is the capability table: protected views and the single role
// allowed to render each. Views absent from the table are public.
var requiredRole = map[View]models.Role{
	ViewEmployeeDashboard:  models.RoleEmployee,
	ViewEmployeeProfile:    models.RoleEmployee,
	ViewRecruiterDashboard: models.RoleRecruiter,
	ViewRecruiterProfile:   models.RoleRecruiter,
	ViewAdminDashboard:     models.RoleAdmin,
}

// Decision is the guard's verdict for a (state, view) pair.
type Decision int

const (
	// Allow renders the view.
	Allow Decision = iota
	// RedirectLogin sends the visitor to the login flow first.
	RedirectLogin
	// Deny refuses the view for the signed-in user's role.
	Deny
)

// RequiredRole reports the role a view demands, if it is protected.
func RequiredRole(view View) (models.Role, bool) {
	r, ok := requiredRole[view]
	return r, ok
}

// Check is a pure function of the auth state, the user's role, and the
// target view. A protected view is never allowed on a role mismatch.
func Check(state auth.State, role models.Role, view View) Decision {
	required, protected := requiredRole[view]
	if !protected {
		return Allow
	}
	if state != auth.StateAuthenticated {
		return RedirectLogin
	}
	if role != required {
		return Deny
	}
	return Allow
}
