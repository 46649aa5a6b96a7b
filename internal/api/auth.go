package api

import (
	"context"
	"net/url"

	"cotizador/internal/models"
)

// IssueToken exchanges credentials for a bearer token. The endpoint takes
// form-encoded credentials, unlike the rest of the API.
func (c *HTTPClient) IssueToken(ctx context.Context, username, password string) (string, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var token models.Token
	if err := c.doForm(ctx, "/token", form, &token); err != nil {
		return "", err
	}
	return token.AccessToken, nil
}

// CurrentAccount returns the account owning the presented token.
func (c *HTTPClient) CurrentAccount(ctx context.Context) (*models.Account, error) {
	var account models.Account
	if err := c.doJSON(ctx, "GET", "/accounts/me", nil, &account); err != nil {
		return nil, err
	}
	return &account, nil
}
