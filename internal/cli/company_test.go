package cli

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowCompanyProfile(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /company-profile/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"company_name": "Talleres Lupita",
			"address":      "Av. Siempre Viva 742",
			"phone":        "555-0100",
			"website":      "lupita.example",
		})
	})

	app, out := newTestApp(t, mux, "")
	app.companyCommand(context.Background(), nil)

	s := out.String()
	assert.Contains(t, s, "Talleres Lupita")
	assert.Contains(t, s, "Av. Siempre Viva 742")
}

func TestUploadLogo(t *testing.T) {
	var gotName string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /company-profile/logo", func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		gotName = header.Filename
		json.NewEncoder(w).Encode(map[string]any{"logo_path": "static/logo.png"})
	})

	path := filepath.Join(t.TempDir(), "logo.png")
	require.NoError(t, os.WriteFile(path, []byte("png-bytes"), 0o660))

	app, out := newTestApp(t, mux, "")
	app.companyCommand(context.Background(), []string{"logo", path})

	assert.Equal(t, "logo.png", gotName)
	assert.Contains(t, out.String(), "Logo uploaded (static/logo.png).")
}

func TestUploadLogo_MissingFile(t *testing.T) {
	app, out := newTestApp(t, http.NewServeMux(), "")
	app.companyCommand(context.Background(), []string{"logo", "/no/such/file.png"})

	assert.Contains(t, out.String(), "Could not read /no/such/file.png.")
}

func TestTermsCommand_EditRoundTrip(t *testing.T) {
	var saved string
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /terms-conditions/", func(w http.ResponseWriter, r *http.Request) {
		body := map[string]string{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		saved = body["content"]
		json.NewEncoder(w).Encode(map[string]any{"content": saved})
	})
	mux.HandleFunc("GET /terms-conditions/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"content": saved})
	})

	app, out := newTestApp(t, mux, "Net 30 payment.\nPrices in MXN.\n\n")
	app.termsCommand(context.Background(), []string{"edit"})
	app.termsCommand(context.Background(), nil)

	assert.Equal(t, "Net 30 payment.\nPrices in MXN.", saved)
	assert.Contains(t, out.String(), "Terms and conditions updated.")
	assert.Contains(t, out.String(), "Net 30 payment.")
}
