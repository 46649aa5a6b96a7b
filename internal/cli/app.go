// Package cli implements the interactive cotizador shell: prompts, command
// dispatch, and the quotation editor. All network work happens through the
// api client; all session state lives in the session manager.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"cotizador/internal/api"
	"cotizador/internal/config"
	"cotizador/internal/localdata"
	"cotizador/internal/logging"
	"cotizador/internal/session"
)

type App struct {
	config  *config.Config
	log     logging.Logger
	api     *api.HTTPClient
	session *session.Manager
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	log := logging.NewTextLogger(os.Stderr, slog.LevelWarn)

	db, err := localdata.InitDatabase(ctx, c.DatabaseFile)
	if err != nil {
		log.Error(ctx, "error initializing local database", "error", err)
		return nil, err
	}
	store := localdata.NewSQLiteRepository(db)

	apiClient := api.NewHTTPClient(c.APIBaseURL,
		api.WithTimeout(c.HTTPTimeout),
		api.WithLogger(log))

	sess := session.NewManager(apiClient, store, log)
	apiClient.SetTokenSource(sess)
	apiClient.Subscribe(session.NewExpiryWatcher(sess))

	app := &App{
		config:  c,
		log:     log,
		api:     apiClient,
		session: sess,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}

	sess.OnExpired(func(ctx context.Context) {
		fmt.Fprintln(app.out, "Your session has expired. Please log in again.")
	})

	return app, nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

// userMessage turns an API error into the short text shown in the shell.
// Authentication failures are handled globally by the expiry watcher, so
// here they only need a generic line.
func (a *App) userMessage(err error) string {
	var apiErr *api.APIError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, api.ErrUnavailable):
		return "The server could not be reached. Please try again later."
	case errors.Is(err, api.ErrUnauthorized):
		return "You are not authorized to perform this action."
	case errors.As(err, &apiErr) && apiErr.Detail != "":
		return apiErr.Detail
	default:
		return "The operation failed. Please try again."
	}
}

// fail prints the user-facing message for err and logs the cause.
func (a *App) fail(ctx context.Context, err error) {
	a.log.Warn(ctx, "operation failed", "error", err)
	fmt.Fprintln(a.out, a.userMessage(err))
}
