package api

import (
	"context"
	"fmt"
	"net/http"

	"cotizador/internal/models"
)

// CreateAccount self-registers a new tenant account. The endpoint does not
// require authentication.
func (c *HTTPClient) CreateAccount(ctx context.Context, account models.AccountCreate) (*models.Account, error) {
	var out models.Account
	if err := c.doJSON(ctx, http.MethodPost, "/accounts/", account, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAccounts is admin-only.
func (c *HTTPClient) ListAccounts(ctx context.Context) ([]models.Account, error) {
	var out []models.Account
	if err := c.doJSON(ctx, http.MethodGet, "/accounts/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateAccount is admin-only.
func (c *HTTPClient) UpdateAccount(ctx context.Context, id int64, update models.AccountUpdate) (*models.Account, error) {
	var out models.Account
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/accounts/%d", id), update, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteAccountWithPassword removes an account after re-confirming the
// caller's password. Admin-only; the backend refuses self-deletion.
func (c *HTTPClient) DeleteAccountWithPassword(ctx context.Context, id int64, password string) error {
	in := struct {
		Password string `json:"password"`
	}{Password: password}
	return c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/accounts/%d/delete", id), in, nil)
}
