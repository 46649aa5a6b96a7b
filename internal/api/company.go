package api

import (
	"context"
	"net/http"

	"cotizador/internal/models"
)

func (c *HTTPClient) GetCompanyProfile(ctx context.Context) (*models.CompanyProfile, error) {
	var out models.CompanyProfile
	if err := c.doJSON(ctx, http.MethodGet, "/company-profile/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateCompanyProfile(ctx context.Context, profile models.CompanyProfile) (*models.CompanyProfile, error) {
	var out models.CompanyProfile
	if err := c.doJSON(ctx, http.MethodPut, "/company-profile/", profile, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadLogo sends the logo image as a multipart file upload.
func (c *HTTPClient) UploadLogo(ctx context.Context, filename string, data []byte) (*models.CompanyProfile, error) {
	var out models.CompanyProfile
	if err := c.doMultipart(ctx, "/company-profile/logo", "file", filename, data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
