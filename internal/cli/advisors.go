package cli

import (
	"context"
	"fmt"

	"cotizador/internal/models"
)

// Advisors are the backend's "users": salespeople a quotation is issued by.

func (a *App) advisorsCommand(ctx context.Context, args []string) {
	if len(args) == 0 {
		a.listAdvisors(ctx)
		return
	}
	switch args[0] {
	case "add":
		a.addAdvisor(ctx)
	case "edit":
		if id, ok := a.requireID(args[1:], "advisors edit <id>"); ok {
			a.editAdvisor(ctx, id)
		}
	case "del":
		if id, ok := a.requireID(args[1:], "advisors del <id>"); ok {
			a.deleteAdvisor(ctx, id)
		}
	default:
		fmt.Fprintln(a.out, "Usage: advisors [add|edit <id>|del <id>]")
	}
}

func (a *App) listAdvisors(ctx context.Context) {
	advisors, err := a.api.ListUsers(ctx)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	if len(advisors) == 0 {
		fmt.Fprintln(a.out, "No advisors yet. Use 'advisors add'.")
		return
	}
	for _, u := range advisors {
		state := "active"
		if !u.IsActive {
			state = "inactive"
		}
		fmt.Fprintf(a.out, "%4d  %-25s  %-25s  %s\n", u.ID, u.FullName, u.Email, state)
	}
}

func (a *App) addAdvisor(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return
	}
	if email == "" {
		fmt.Fprintln(a.out, "Email is required.")
		return
	}
	fullName, err := GetSimpleText(a.reader, "Full name", a.out)
	if err != nil {
		return
	}
	phone, err := GetSimpleText(a.reader, "Phone", a.out)
	if err != nil {
		return
	}

	created, err := a.api.CreateUser(ctx, models.User{Email: email, FullName: fullName, Phone: phone})
	if err != nil {
		a.fail(ctx, err)
		return
	}
	fmt.Fprintf(a.out, "Advisor %q created with id %d.\n", created.Email, created.ID)
}

func (a *App) editAdvisor(ctx context.Context, id int64) {
	current, ok := a.findAdvisor(ctx, id)
	if !ok {
		return
	}

	email, err := GetDefaultedText(a.reader, "Email", current.Email, a.out)
	if err != nil {
		return
	}
	fullName, err := GetDefaultedText(a.reader, "Full name", current.FullName, a.out)
	if err != nil {
		return
	}
	phone, err := GetDefaultedText(a.reader, "Phone", current.Phone, a.out)
	if err != nil {
		return
	}
	active, err := GetYesNo(a.reader, "Active?", current.IsActive, a.out)
	if err != nil {
		return
	}

	update := models.UserUpdate{
		Email:    &email,
		FullName: &fullName,
		Phone:    &phone,
		IsActive: &active,
	}
	if _, err := a.api.UpdateUser(ctx, id, update); err != nil {
		a.fail(ctx, err)
		return
	}
	fmt.Fprintln(a.out, "Advisor updated.")
}

func (a *App) deleteAdvisor(ctx context.Context, id int64) {
	sure, err := GetYesNo(a.reader, fmt.Sprintf("Delete advisor %d?", id), false, a.out)
	if err != nil || !sure {
		return
	}
	if err := a.api.DeleteUser(ctx, id); err != nil {
		a.fail(ctx, err)
		return
	}
	fmt.Fprintln(a.out, "Advisor deleted.")
}

func (a *App) findAdvisor(ctx context.Context, id int64) (models.User, bool) {
	advisors, err := a.api.ListUsers(ctx)
	if err != nil {
		a.fail(ctx, err)
		return models.User{}, false
	}
	for _, u := range advisors {
		if u.ID == id {
			return u, true
		}
	}
	fmt.Fprintf(a.out, "No advisor with id %d.\n", id)
	return models.User{}, false
}
