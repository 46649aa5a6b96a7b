package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"cotizador/internal/models"
)

func (a *App) companyCommand(ctx context.Context, args []string) {
	if len(args) == 0 {
		a.showCompanyProfile(ctx)
		return
	}
	switch args[0] {
	case "edit":
		a.editCompanyProfile(ctx)
	case "logo":
		if len(args) < 2 {
			fmt.Fprintln(a.out, "Usage: company logo <file>")
			return
		}
		a.uploadLogo(ctx, args[1])
	default:
		fmt.Fprintln(a.out, "Usage: company [edit|logo <file>]")
	}
}

func (a *App) showCompanyProfile(ctx context.Context) {
	profile, err := a.api.GetCompanyProfile(ctx)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	fmt.Fprintf(a.out, "Company: %s\n", profile.CompanyName)
	fmt.Fprintf(a.out, "Address: %s\n", profile.Address)
	fmt.Fprintf(a.out, "Phone:   %s\n", profile.Phone)
	fmt.Fprintf(a.out, "Website: %s\n", profile.Website)
	if profile.LogoPath != "" {
		fmt.Fprintf(a.out, "Logo:    %s\n", profile.LogoPath)
	}
}

func (a *App) editCompanyProfile(ctx context.Context) {
	current, err := a.api.GetCompanyProfile(ctx)
	if err != nil {
		a.fail(ctx, err)
		return
	}

	name, err := GetDefaultedText(a.reader, "Company name", current.CompanyName, a.out)
	if err != nil {
		return
	}
	address, err := GetDefaultedText(a.reader, "Address", current.Address, a.out)
	if err != nil {
		return
	}
	phone, err := GetDefaultedText(a.reader, "Phone", current.Phone, a.out)
	if err != nil {
		return
	}
	website, err := GetDefaultedText(a.reader, "Website", current.Website, a.out)
	if err != nil {
		return
	}

	_, err = a.api.UpdateCompanyProfile(ctx, models.CompanyProfile{
		CompanyName: name,
		Address:     address,
		Phone:       phone,
		Website:     website,
	})
	if err != nil {
		a.fail(ctx, err)
		return
	}
	fmt.Fprintln(a.out, "Company profile updated.")
}

func (a *App) uploadLogo(ctx context.Context, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		a.log.Error(ctx, "failed to read logo file", "error", err)
		fmt.Fprintf(a.out, "Could not read %s.\n", path)
		return
	}

	profile, err := a.api.UploadLogo(ctx, filepath.Base(path), data)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	fmt.Fprintf(a.out, "Logo uploaded (%s).\n", profile.LogoPath)
}

func (a *App) termsCommand(ctx context.Context, args []string) {
	if len(args) > 0 && args[0] == "edit" {
		a.editTerms(ctx)
		return
	}

	terms, err := a.api.GetTerms(ctx)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	if terms.Content == "" {
		fmt.Fprintln(a.out, "No terms and conditions set. Use 'terms edit'.")
		return
	}
	fmt.Fprintln(a.out, terms.Content)
}

func (a *App) editTerms(ctx context.Context) {
	content, err := GetMultiline(a.reader, "Terms and conditions (finish with an empty line)", a.out)
	if err != nil {
		return
	}

	if _, err := a.api.UpdateTerms(ctx, content); err != nil {
		a.fail(ctx, err)
		return
	}
	fmt.Fprintln(a.out, "Terms and conditions updated.")
}
