package cli

import (
	"context"
	"strings"

	"github.com/pterm/pterm"

	"github.com/jobdeck/jobdeck/internal/client/guard"
	"github.com/jobdeck/jobdeck/internal/client/models"
	"github.com/jobdeck/jobdeck/internal/client/views"
)

// Profile shows the signed-in user's profile and offers an edit pass. Empty
// input keeps the current value of a field; the email never changes.
func (a *App) Profile(ctx context.Context) {
	if a.currentRole() == models.RoleRecruiter {
		if a.guardView(ctx, guard.ViewRecruiterProfile) {
			a.recruiterProfile(ctx)
		}
		return
	}
	if a.guardView(ctx, guard.ViewEmployeeProfile) {
		a.employeeProfile(ctx)
	}
}

func (a *App) employeeProfile(ctx context.Context) {
	user, _ := a.auth.CurrentUser()
	v := views.NewEmployeeProfileView(a.client, a.log, user.Email)

	v.Load(ctx)
	if v.Phase() != views.PhaseReady {
		pterm.Error.Println(v.Message())
		return
	}
	views.RenderEmployeeProfile(v.Profile())

	if !a.confirm("Edit profile?") {
		return
	}

	cur := *v.Profile()
	form := models.EmployeeProfile{Email: cur.Email}
	var err error
	if form.Name, err = GetOptionalText(a.reader, "Name", cur.Name, a.out); err != nil {
		return
	}
	if form.Phone, err = GetOptionalText(a.reader, "Phone", cur.Phone, a.out); err != nil {
		return
	}
	if form.Address, err = GetOptionalText(a.reader, "Address", cur.Address, a.out); err != nil {
		return
	}
	if form.Skills, err = GetOptionalText(a.reader, "Skills", cur.Skills, a.out); err != nil {
		return
	}
	if form.Experience, err = GetOptionalText(a.reader, "Experience", cur.Experience, a.out); err != nil {
		return
	}

	if v.Save(ctx, form) {
		pterm.Success.Println(v.Message())
		views.RenderEmployeeProfile(v.Profile())
	} else {
		pterm.Error.Println(v.Message())
	}
}

func (a *App) recruiterProfile(ctx context.Context) {
	user, _ := a.auth.CurrentUser()
	v := views.NewRecruiterProfileView(a.client, a.log, user.Email)

	v.Load(ctx)
	if v.Phase() != views.PhaseReady {
		pterm.Error.Println(v.Message())
		return
	}
	views.RenderRecruiterProfile(v.Profile())

	if !a.confirm("Edit profile?") {
		return
	}

	cur := *v.Profile()
	form := models.RecruiterProfile{Email: cur.Email}
	var err error
	if form.Name, err = GetOptionalText(a.reader, "Name", cur.Name, a.out); err != nil {
		return
	}
	if form.Phone, err = GetOptionalText(a.reader, "Phone", cur.Phone, a.out); err != nil {
		return
	}
	if form.CompanyName, err = GetOptionalText(a.reader, "Company name", cur.CompanyName, a.out); err != nil {
		return
	}
	if form.CompanyAddress, err = GetOptionalText(a.reader, "Company address", cur.CompanyAddress, a.out); err != nil {
		return
	}

	if v.Save(ctx, form) {
		pterm.Success.Println(v.Message())
		views.RenderRecruiterProfile(v.Profile())
	} else {
		pterm.Error.Println(v.Message())
	}
}

func (a *App) confirm(prompt string) bool {
	answer, err := GetSimpleText(a.reader, prompt+" (y/n)", a.out)
	if err != nil {
		return false
	}
	return strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes")
}
