package cli

import (
	"context"

	"github.com/pterm/pterm"
)

func (a *App) Login(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		a.log.Error(ctx, "failed to read email", "error", err)
		return
	}

	password, err := GetPassword(a.out)
	if err != nil {
		a.log.Error(ctx, "failed to read password", "error", err)
		return
	}

	user, err := a.auth.Login(ctx, email, string(password))
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}

	pterm.Success.Printfln("Signed in as %s (%s)", user.Name, user.Role)
}

func (a *App) Logout(ctx context.Context) {
	a.auth.Logout(ctx)
	pterm.Info.Println("Signed out.")
}
