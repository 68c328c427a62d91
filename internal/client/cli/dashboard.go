package cli

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"

	"github.com/jobdeck/jobdeck/internal/client/guard"
	"github.com/jobdeck/jobdeck/internal/client/models"
	"github.com/jobdeck/jobdeck/internal/client/views"
)

// Dashboard opens the role-specific home screen of the signed-in user.
func (a *App) Dashboard(ctx context.Context) {
	switch a.currentRole() {
	case models.RoleRecruiter:
		if a.guardView(ctx, guard.ViewRecruiterDashboard) {
			a.recruiterDashboard(ctx)
		}
	case models.RoleAdmin:
		if a.guardView(ctx, guard.ViewAdminDashboard) {
			a.adminDashboard(ctx, "")
		}
	default:
		if a.guardView(ctx, guard.ViewEmployeeDashboard) {
			a.employeeDashboard(ctx)
		}
	}
}

func (a *App) employeeDashboard(ctx context.Context) {
	user, _ := a.auth.CurrentUser()
	e := views.NewEmployeeDashboard(a.client, a.log)

	spinner, _ := pterm.DefaultSpinner.Start("Loading dashboard...")
	e.Load(ctx, user.Email)
	_ = spinner.Stop()

	switch e.Phase() {
	case views.PhaseError:
		pterm.Error.Println(e.ErrorMessage())
	case views.PhaseEmpty:
		fmt.Fprintln(a.out, "You have not applied to any jobs yet.")
	default:
		views.RenderStatusCounts(e.Counts())
		views.RenderApplicationsTable(e.Applications())
	}
}

func (a *App) recruiterDashboard(ctx context.Context) {
	user, _ := a.auth.CurrentUser()
	r := views.NewRecruiterDashboard(a.client, a.log, user.Email)

	spinner, _ := pterm.DefaultSpinner.Start("Loading dashboard...")
	r.Load(ctx)
	_ = spinner.Stop()

	switch r.Phase() {
	case views.PhaseError:
		pterm.Error.Println(r.ErrorMessage())
	case views.PhaseEmpty:
		fmt.Fprintln(a.out, "No postings or applications yet. Use 'post' to publish a job.")
	default:
		pterm.DefaultSection.Println("My Postings")
		views.RenderJobsTable(r.Jobs())
		pterm.DefaultSection.Println("Incoming Applications")
		views.RenderApplicationsTable(r.Applications())
	}
}

func (a *App) adminDashboard(ctx context.Context, roleFilter models.Role) {
	user, _ := a.auth.CurrentUser()
	d := views.NewAdminDashboard(a.client, a.log, user.Email)
	d.SetRoleFilter(roleFilter)

	spinner, _ := pterm.DefaultSpinner.Start("Loading dashboard...")
	d.Load(ctx)
	_ = spinner.Stop()

	switch d.Phase() {
	case views.PhaseError:
		pterm.Error.Println(d.ErrorMessage())
	case views.PhaseEmpty:
		views.RenderSystemStatus(d.Status())
		fmt.Fprintln(a.out, "No users match the filter.")
	default:
		views.RenderSystemStatus(d.Status())
		views.RenderUsersTable(d.UsersList(), user.Email)
	}
}

// UpdateStatus accepts or rejects a pending application from the recruiter
// dashboard.
func (a *App) UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) {
	if !a.guardView(ctx, guard.ViewRecruiterDashboard) {
		return
	}
	user, _ := a.auth.CurrentUser()
	r := views.NewRecruiterDashboard(a.client, a.log, user.Email)

	if !r.UpdateStatus(ctx, id, status) {
		pterm.Error.Println(r.ErrorMessage())
		return
	}
	pterm.Success.Printfln("Application %d %s.", id, status)
	views.RenderApplicationsTable(r.Applications())
}
