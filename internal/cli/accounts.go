package cli

import (
	"context"
	"fmt"

	"cotizador/internal/models"
)

func (a *App) accountsCommand(ctx context.Context, args []string) {
	if !a.session.Account().IsAdmin() {
		fmt.Fprintln(a.out, "Only administrators can manage accounts.")
		return
	}

	if len(args) == 0 {
		a.listAccounts(ctx)
		return
	}
	switch args[0] {
	case "edit":
		if id, ok := a.requireID(args[1:], "accounts edit <id>"); ok {
			a.editAccount(ctx, id)
		}
	case "del":
		if id, ok := a.requireID(args[1:], "accounts del <id>"); ok {
			a.deleteAccount(ctx, id)
		}
	default:
		fmt.Fprintln(a.out, "Usage: accounts [edit <id>|del <id>]")
	}
}

func (a *App) listAccounts(ctx context.Context) {
	accounts, err := a.api.ListAccounts(ctx)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	for _, acc := range accounts {
		fmt.Fprintf(a.out, "%4d  %-20s  %-25s  %s\n", acc.ID, acc.Username, acc.FullName, acc.Role)
	}
}

func (a *App) editAccount(ctx context.Context, id int64) {
	accounts, err := a.api.ListAccounts(ctx)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	var current *models.Account
	for i := range accounts {
		if accounts[i].ID == id {
			current = &accounts[i]
			break
		}
	}
	if current == nil {
		fmt.Fprintf(a.out, "No account with id %d.\n", id)
		return
	}

	fullName, err := GetDefaultedText(a.reader, "Full name", current.FullName, a.out)
	if err != nil {
		return
	}
	role, err := GetDefaultedText(a.reader, "Role (user/admin)", current.Role, a.out)
	if err != nil {
		return
	}
	if role != models.RoleUser && role != models.RoleAdmin {
		fmt.Fprintln(a.out, "Role must be 'user' or 'admin'.")
		return
	}

	update := models.AccountUpdate{FullName: &fullName, Role: &role}
	if _, err := a.api.UpdateAccount(ctx, id, update); err != nil {
		a.fail(ctx, err)
		return
	}
	fmt.Fprintln(a.out, "Account updated.")
}

// deleteAccount re-prompts the administrator's own password; the backend
// rejects the delete when it does not match.
func (a *App) deleteAccount(ctx context.Context, id int64) {
	if self := a.session.Account(); self != nil && self.ID == id {
		fmt.Fprintln(a.out, "You cannot delete the account you are logged in with.")
		return
	}

	sure, err := GetYesNo(a.reader, fmt.Sprintf("Delete account %d and all its data?", id), false, a.out)
	if err != nil || !sure {
		return
	}

	fmt.Fprintln(a.out, "Confirm with your password.")
	password, err := getPassword(a.out)
	if err != nil {
		return
	}

	if err := a.api.DeleteAccountWithPassword(ctx, id, string(password)); err != nil {
		a.fail(ctx, err)
		return
	}
	fmt.Fprintln(a.out, "Account deleted.")
}
