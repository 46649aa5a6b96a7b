package cli

import (
	"context"
	"fmt"

	"cotizador/internal/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and attempts to establish a session. The
// session manager only reports a boolean, so the failure line is generic.
func (a *App) Login(ctx context.Context) {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return
	}

	password, err := getPassword(a.out)
	if err != nil {
		return
	}

	if !a.session.Login(ctx, username, string(password)) {
		fmt.Fprintln(a.out, "Login failed. Check your username and password.")
		return
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", a.session.Account().Username)
}

// Register creates a new tenant account and suggests logging in.
func (a *App) Register(ctx context.Context) {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return
	}
	fullName, err := getSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		return
	}
	password, err := getPassword(a.out)
	if err != nil {
		return
	}

	_, err = a.api.CreateAccount(ctx, models.AccountCreate{
		Username: username,
		FullName: fullName,
		Password: string(password),
	})
	if err != nil {
		a.fail(ctx, err)
		return
	}

	fmt.Fprintln(a.out, "Account created. You can log in now.")
}

func (a *App) Logout(ctx context.Context) {
	a.session.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out.")
}

func (a *App) Whoami() {
	account := a.session.Account()
	if account == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return
	}
	fmt.Fprintf(a.out, "%s (%s), role %s\n", account.Username, account.FullName, account.Role)
}
