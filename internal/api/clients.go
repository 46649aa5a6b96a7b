package api

import (
	"context"
	"fmt"
	"net/http"

	"cotizador/internal/models"
)

func (c *HTTPClient) ListClients(ctx context.Context) ([]models.Client, error) {
	var out []models.Client
	if err := c.doJSON(ctx, http.MethodGet, "/clients/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateClient(ctx context.Context, client models.Client) (*models.Client, error) {
	var out models.Client
	if err := c.doJSON(ctx, http.MethodPost, "/clients/", client, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateClient(ctx context.Context, id int64, client models.Client) (*models.Client, error) {
	var out models.Client
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/clients/%d", id), client, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteClient(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/clients/%d", id), nil, nil)
}
