package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jobdeck/jobdeck/internal/client/auth"
	"github.com/jobdeck/jobdeck/internal/client/models"
)

func TestCheck_PublicViews_AlwaysAllowed(t *testing.T) {
	for _, view := range []View{ViewHome, ViewListings, ViewDetails, ViewChat} {
		assert.Equal(t, Allow, Check(auth.StateUnauthenticated, "", view), "view %s", view)
		assert.Equal(t, Allow, Check(auth.StateAuthenticated, models.RoleAdmin, view), "view %s", view)
	}
}

func TestCheck_Unauthenticated_RedirectsToLogin(t *testing.T) {
	protected := []View{
		ViewEmployeeDashboard, ViewEmployeeProfile,
		ViewRecruiterDashboard, ViewRecruiterProfile,
		ViewAdminDashboard,
	}
	for _, view := range protected {
		assert.Equal(t, RedirectLogin, Check(auth.StateUnauthenticated, "", view), "view %s", view)
	}
}

// Every protected view against every role: exactly one role is allowed, the
// other two are denied, and an unauthenticated visitor is redirected.
func TestCheck_RoleMatrix(t *testing.T) {
	views := map[View]models.Role{
		ViewEmployeeDashboard:  models.RoleEmployee,
		ViewEmployeeProfile:    models.RoleEmployee,
		ViewRecruiterDashboard: models.RoleRecruiter,
		ViewRecruiterProfile:   models.RoleRecruiter,
		ViewAdminDashboard:     models.RoleAdmin,
	}
	roles := []models.Role{models.RoleEmployee, models.RoleRecruiter, models.RoleAdmin}

	for view, allowed := range views {
		for _, role := range roles {
			got := Check(auth.StateAuthenticated, role, view)
			if role == allowed {
				assert.Equal(t, Allow, got, "view %s role %s", view, role)
			} else {
				assert.Equal(t, Deny, got, "view %s role %s", view, role)
			}
		}
	}
}

func TestCheck_AuthenticatingIsNotAuthenticated(t *testing.T) {
	got := Check(auth.StateAuthenticating, models.RoleEmployee, ViewEmployeeDashboard)
	assert.Equal(t, RedirectLogin, got)
}

func TestRequiredRole(t *testing.T) {
	r, ok := RequiredRole(ViewAdminDashboard)
	assert.True(t, ok)
	assert.Equal(t, models.RoleAdmin, r)

	_, ok = RequiredRole(ViewListings)
	assert.False(t, ok)
}
