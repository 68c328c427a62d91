package cli

import (
	"context"
	"strings"

	"github.com/pterm/pterm"

	"github.com/jobdeck/jobdeck/internal/client/guard"
	"github.com/jobdeck/jobdeck/internal/client/models"
	"github.com/jobdeck/jobdeck/internal/client/views"
)

// PostJob publishes a posting. Recruiters post from their dashboard, admins
// from theirs with their own email as the recruiter of record.
func (a *App) PostJob(ctx context.Context) {
	isAdmin := a.currentRole() == models.RoleAdmin

	view := guard.ViewRecruiterDashboard
	if isAdmin {
		view = guard.ViewAdminDashboard
	}
	if !a.guardView(ctx, view) {
		return
	}

	form, err := a.promptJobForm(ctx)
	if err != nil {
		return
	}

	user, _ := a.auth.CurrentUser()
	var ok bool
	if isAdmin {
		ok = views.NewAdminDashboard(a.client, a.log, user.Email).PostJob(ctx, form)
	} else {
		ok = views.NewRecruiterDashboard(a.client, a.log, user.Email).PostJob(ctx, form)
	}

	if ok {
		pterm.Success.Println("Job posted successfully!")
	} else {
		pterm.Error.Println("Failed to post job")
	}
}

func (a *App) promptJobForm(ctx context.Context) (models.NewJobPosting, error) {
	var form models.NewJobPosting
	var err error

	if form.JobTitle, err = GetSimpleText(a.reader, "Job title", a.out); err != nil {
		a.log.Error(ctx, "failed to read job form", "error", err)
		return form, err
	}
	if form.CompanyName, err = GetSimpleText(a.reader, "Company name", a.out); err != nil {
		return form, err
	}

	kind, err := GetSimpleText(a.reader, "Job type (full_time/part_time/contract/internship)", a.out)
	if err != nil {
		return form, err
	}
	form.JobType = models.JobType(strings.ToUpper(strings.TrimSpace(kind)))
	switch form.JobType {
	case models.JobTypeFullTime, models.JobTypePartTime, models.JobTypeContract, models.JobTypeInternship:
	default:
		form.JobType = models.JobTypeFullTime
	}

	if form.JobLocation, err = GetSimpleText(a.reader, "Location", a.out); err != nil {
		return form, err
	}
	if form.JobDescription, err = GetSimpleText(a.reader, "Description", a.out); err != nil {
		return form, err
	}
	if form.DeadLineDate, err = GetSimpleText(a.reader, "Application deadline (YYYY-MM-DD)", a.out); err != nil {
		return form, err
	}
	return form, nil
}
