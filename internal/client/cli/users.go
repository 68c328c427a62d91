package cli

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"

	"github.com/jobdeck/jobdeck/internal/client/guard"
	"github.com/jobdeck/jobdeck/internal/client/models"
	"github.com/jobdeck/jobdeck/internal/client/views"
	"github.com/jobdeck/jobdeck/internal/common"
)

// Users lists accounts on the admin dashboard, optionally filtered by role.
func (a *App) Users(ctx context.Context, roleArg string) {
	if !a.guardView(ctx, guard.ViewAdminDashboard) {
		return
	}

	var filter models.Role
	if roleArg != "" {
		filter = models.Role(strings.ToUpper(strings.TrimSpace(roleArg)))
		if !filter.Valid() {
			pterm.Error.Println("Role must be employee, recruiter, or admin.")
			return
		}
	}

	a.adminDashboard(ctx, filter)
}

// SetUserActive toggles an account from the admin dashboard.
func (a *App) SetUserActive(ctx context.Context, email string, active bool) {
	if !a.guardView(ctx, guard.ViewAdminDashboard) {
		return
	}

	user, _ := a.auth.CurrentUser()
	d := views.NewAdminDashboard(a.client, a.log, user.Email)

	if err := d.SetUserActive(ctx, email, active); err != nil {
		if errors.Is(err, common.ErrSelfUpdate) {
			pterm.Error.Println("You cannot change your own account status.")
			return
		}
		pterm.Error.Println(d.ErrorMessage())
		return
	}

	if active {
		pterm.Success.Printfln("Activated %s.", email)
	} else {
		pterm.Success.Printfln("Deactivated %s.", email)
	}
	views.RenderUsersTable(d.UsersList(), user.Email)
}
