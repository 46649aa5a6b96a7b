package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) getStatus() string {
	account := a.session.Account()
	if account == nil {
		return ""
	}
	s := account.Username
	if account.IsAdmin() {
		s += " admin"
	}
	return fmt.Sprintf("(%s)", s)
}

// Root runs the interactive loop. The prompt reflects the session: a forced
// expiry clears it, which drops the shell back to the logged-out command set
// on the next iteration.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to cotizador (type 'help' for commands)")

	if a.session.Restore(ctx) {
		fmt.Fprintf(a.out, "Welcome back, %s!\n", a.session.Account().Username)
	}

	for {
		fmt.Fprintf(a.out, "cotizador %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		if cmd == "exit" || cmd == "quit" {
			fmt.Fprintln(a.out, "Bye!")
			return
		}

		if !a.session.IsAuthenticated() {
			a.dispatchLoggedOut(ctx, cmd)
			continue
		}
		a.dispatch(ctx, cmd, args)
	}
}

func (a *App) dispatchLoggedOut(ctx context.Context, cmd string) {
	switch cmd {
	case "help":
		fmt.Fprintln(a.out, "Available commands: login, register, exit")
	case "login":
		a.Login(ctx)
	case "register":
		a.Register(ctx)
	default:
		fmt.Fprintln(a.out, "Please log in first (type 'help' for commands)")
	}
}

func (a *App) dispatch(ctx context.Context, cmd string, args []string) {
	switch cmd {
	case "help":
		a.printHelp()
	case "whoami":
		a.Whoami()
	case "logout":
		a.Logout(ctx)
	case "clients":
		a.clientsCommand(ctx, args)
	case "products":
		a.productsCommand(ctx, args)
	case "advisors":
		a.advisorsCommand(ctx, args)
	case "quotations":
		a.quotationsCommand(ctx, args)
	case "company":
		a.companyCommand(ctx, args)
	case "terms":
		a.termsCommand(ctx, args)
	case "accounts":
		a.accountsCommand(ctx, args)
	default:
		fmt.Fprintf(a.out, "Unknown command %q (type 'help')\n", cmd)
	}
}

func (a *App) printHelp() {
	fmt.Fprintln(a.out, `Available commands:
  whoami                               show the current account
  clients [add|edit <id>|del <id>]     manage clients
  products [add|edit <id>|del <id>]    manage products
  advisors [add|edit <id>|del <id>]    manage sales advisors
  quotations [new|show <id>|status <id> <status>|pdf <id>|del <id>]
  company [edit|logo <file>]           company profile
  terms [edit]                         terms and conditions
  accounts [edit <id>|del <id>]        account administration (admin only)
  logout, exit`)
}
