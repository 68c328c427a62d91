package cli

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"

	"github.com/jobdeck/jobdeck/internal/client/views"
)

func (a *App) Jobs(ctx context.Context) {
	l := views.NewListings(a.client, a.log)

	spinner, _ := pterm.DefaultSpinner.Start("Loading jobs...")
	l.Load(ctx)
	_ = spinner.Stop()

	a.renderListings(l)
}

func (a *App) Search(ctx context.Context, term string) {
	l := views.NewListings(a.client, a.log)

	spinner, _ := pterm.DefaultSpinner.Start("Searching...")
	l.Search(ctx, term)
	_ = spinner.Stop()

	a.renderListings(l)
}

func (a *App) renderListings(l *views.Listings) {
	switch l.Phase() {
	case views.PhaseError:
		pterm.Error.Println(l.ErrorMessage())
	case views.PhaseEmpty:
		if l.Term() != "" {
			fmt.Fprintf(a.out, "No jobs found for %q.\n", l.Term())
		} else {
			fmt.Fprintln(a.out, "No jobs available right now.")
		}
	default:
		views.RenderJobsTable(l.Jobs())
	}
}

func (a *App) JobDetails(ctx context.Context, id int64) {
	d := views.NewDetails(a.client, a.log)

	spinner, _ := pterm.DefaultSpinner.Start("Loading job...")
	d.Load(ctx, id)
	_ = spinner.Stop()

	switch d.Phase() {
	case views.PhaseError:
		pterm.Error.Println(d.Message())
	case views.PhaseNotFound:
		fmt.Fprintf(a.out, "Job %d not found.\n", id)
	default:
		views.RenderJobDetails(d.Job())
	}
}

// Apply submits an application for a posting. A signed-out user is sent
// through login first, then the application goes out under their account.
func (a *App) Apply(ctx context.Context, id int64) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please sign in first.")
		a.Login(ctx)
		if !a.isLoggedIn() {
			return
		}
	}
	user, _ := a.auth.CurrentUser()

	d := views.NewDetails(a.client, a.log)
	d.Load(ctx, id)

	switch d.Phase() {
	case views.PhaseError:
		pterm.Error.Println(d.Message())
		return
	case views.PhaseNotFound:
		fmt.Fprintf(a.out, "Job %d not found.\n", id)
		return
	}

	if d.Apply(ctx, user) {
		pterm.Success.Println(d.Message())
	} else {
		pterm.Error.Println(d.Message())
	}
}
