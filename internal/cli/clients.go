package cli

import (
	"context"
	"fmt"

	"cotizador/internal/models"
)

func (a *App) clientsCommand(ctx context.Context, args []string) {
	if len(args) == 0 {
		a.listClients(ctx)
		return
	}
	switch args[0] {
	case "add":
		a.addClient(ctx)
	case "edit":
		if id, ok := a.requireID(args[1:], "clients edit <id>"); ok {
			a.editClient(ctx, id)
		}
	case "del":
		if id, ok := a.requireID(args[1:], "clients del <id>"); ok {
			a.deleteClient(ctx, id)
		}
	default:
		fmt.Fprintln(a.out, "Usage: clients [add|edit <id>|del <id>]")
	}
}

func (a *App) listClients(ctx context.Context) {
	clients, err := a.api.ListClients(ctx)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	if len(clients) == 0 {
		fmt.Fprintln(a.out, "No clients yet. Use 'clients add'.")
		return
	}
	for _, c := range clients {
		fmt.Fprintf(a.out, "%4d  %-30s  %-20s  %s\n", c.ID, c.Name, c.ContactPerson, c.Email)
	}
}

func (a *App) promptClient(current models.Client) (models.Client, error) {
	name, err := GetDefaultedText(a.reader, "Name", current.Name, a.out)
	if err != nil {
		return current, err
	}
	idNumber, err := GetDefaultedText(a.reader, "Tax/ID number", current.ClientIDNumber, a.out)
	if err != nil {
		return current, err
	}
	contact, err := GetDefaultedText(a.reader, "Contact person", current.ContactPerson, a.out)
	if err != nil {
		return current, err
	}
	email, err := GetDefaultedText(a.reader, "Email", current.Email, a.out)
	if err != nil {
		return current, err
	}
	phone, err := GetDefaultedText(a.reader, "Phone", current.Phone, a.out)
	if err != nil {
		return current, err
	}

	current.Name = name
	current.ClientIDNumber = idNumber
	current.ContactPerson = contact
	current.Email = email
	current.Phone = phone
	return current, nil
}

func (a *App) addClient(ctx context.Context) {
	client, err := a.promptClient(models.Client{})
	if err != nil {
		return
	}
	if client.Name == "" {
		fmt.Fprintln(a.out, "Name is required.")
		return
	}

	created, err := a.api.CreateClient(ctx, client)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	fmt.Fprintf(a.out, "Client %q created with id %d.\n", created.Name, created.ID)
}

func (a *App) editClient(ctx context.Context, id int64) {
	current, ok := a.findClient(ctx, id)
	if !ok {
		return
	}

	client, err := a.promptClient(current)
	if err != nil {
		return
	}
	if client.Name == "" {
		fmt.Fprintln(a.out, "Name is required.")
		return
	}

	if _, err := a.api.UpdateClient(ctx, id, client); err != nil {
		a.fail(ctx, err)
		return
	}
	fmt.Fprintln(a.out, "Client updated.")
}

func (a *App) deleteClient(ctx context.Context, id int64) {
	sure, err := GetYesNo(a.reader, fmt.Sprintf("Delete client %d?", id), false, a.out)
	if err != nil || !sure {
		return
	}
	if err := a.api.DeleteClient(ctx, id); err != nil {
		a.fail(ctx, err)
		return
	}
	fmt.Fprintln(a.out, "Client deleted.")
}

func (a *App) findClient(ctx context.Context, id int64) (models.Client, bool) {
	clients, err := a.api.ListClients(ctx)
	if err != nil {
		a.fail(ctx, err)
		return models.Client{}, false
	}
	for _, c := range clients {
		if c.ID == id {
			return c, true
		}
	}
	fmt.Fprintf(a.out, "No client with id %d.\n", id)
	return models.Client{}, false
}
