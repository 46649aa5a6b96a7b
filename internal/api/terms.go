package api

import (
	"context"
	"net/http"

	"cotizador/internal/models"
)

func (c *HTTPClient) GetTerms(ctx context.Context) (*models.TermsConditions, error) {
	var out models.TermsConditions
	if err := c.doJSON(ctx, http.MethodGet, "/terms-conditions/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateTerms(ctx context.Context, content string) (*models.TermsConditions, error) {
	var out models.TermsConditions
	in := models.TermsConditions{Content: content}
	if err := c.doJSON(ctx, http.MethodPut, "/terms-conditions/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
