package api

import (
	"context"
	"fmt"
	"net/http"

	"cotizador/internal/models"
)

func (c *HTTPClient) ListQuotations(ctx context.Context) ([]models.Quotation, error) {
	var out []models.Quotation
	if err := c.doJSON(ctx, http.MethodGet, "/quotations/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) GetQuotation(ctx context.Context, id int64) (*models.Quotation, error) {
	var out models.Quotation
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/quotations/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CreateQuotation(ctx context.Context, q models.Quotation) (*models.Quotation, error) {
	var out models.Quotation
	if err := c.doJSON(ctx, http.MethodPost, "/quotations/", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateQuotationStatus changes a stored quotation's status; items are
// immutable once created.
func (c *HTTPClient) UpdateQuotationStatus(ctx context.Context, id int64, status string) (*models.Quotation, error) {
	var out models.Quotation
	update := models.QuotationUpdate{Status: status}
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/quotations/%d", id), update, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteQuotation(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/quotations/%d", id), nil, nil)
}

// DownloadQuotationPDF fetches the rendered PDF as raw bytes.
func (c *HTTPClient) DownloadQuotationPDF(ctx context.Context, id int64) ([]byte, error) {
	return c.doBinary(ctx, fmt.Sprintf("/quotations/%d/pdf", id))
}
