package cli

import (
	"context"
	"strings"

	"github.com/pterm/pterm"

	"github.com/jobdeck/jobdeck/internal/client/models"
)

func (a *App) Register(ctx context.Context) {
	name, err := GetSimpleText(a.reader, "Enter your name", a.out)
	if err != nil {
		a.log.Error(ctx, "failed to read name", "error", err)
		return
	}

	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		a.log.Error(ctx, "failed to read email", "error", err)
		return
	}

	roleText, err := GetSimpleText(a.reader, "Register as (employee/recruiter)", a.out)
	if err != nil {
		a.log.Error(ctx, "failed to read role", "error", err)
		return
	}
	role := models.Role(strings.ToUpper(strings.TrimSpace(roleText)))
	if role != models.RoleEmployee && role != models.RoleRecruiter {
		pterm.Error.Println("Role must be employee or recruiter.")
		return
	}

	password, err := GetPassword(a.out)
	if err != nil {
		a.log.Error(ctx, "failed to read password", "error", err)
		return
	}

	user, err := a.auth.Register(ctx, name, email, string(password), role)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}

	pterm.Success.Printfln("Welcome, %s! You are signed in as %s.", user.Name, user.Role)
}
