package cli

import (
	"context"
	"fmt"

	"cotizador/internal/models"
	"cotizador/internal/quotation"
)

func (a *App) productsCommand(ctx context.Context, args []string) {
	if len(args) == 0 {
		a.listProducts(ctx)
		return
	}
	switch args[0] {
	case "add":
		a.addProduct(ctx)
	case "edit":
		if id, ok := a.requireID(args[1:], "products edit <id>"); ok {
			a.editProduct(ctx, id)
		}
	case "del":
		if id, ok := a.requireID(args[1:], "products del <id>"); ok {
			a.deleteProduct(ctx, id)
		}
	default:
		fmt.Fprintln(a.out, "Usage: products [add|edit <id>|del <id>]")
	}
}

func (a *App) listProducts(ctx context.Context) {
	products, err := a.api.ListProducts(ctx)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	if len(products) == 0 {
		fmt.Fprintln(a.out, "No products yet. Use 'products add'.")
		return
	}
	for _, p := range products {
		fmt.Fprintf(a.out, "%4d  %-30s  %10s  %s\n", p.ID, p.Name, quotation.FormatMoney(p.Price), p.Description)
	}
}

func (a *App) promptProduct(current models.Product) (models.Product, error) {
	name, err := GetDefaultedText(a.reader, "Name", current.Name, a.out)
	if err != nil {
		return current, err
	}
	description, err := GetDefaultedText(a.reader, "Description", current.Description, a.out)
	if err != nil {
		return current, err
	}
	price, err := GetDefaultedText(a.reader, "Price", fmt.Sprintf("%g", current.Price), a.out)
	if err != nil {
		return current, err
	}

	current.Name = name
	current.Description = description
	current.Price = quotation.CoerceNumber(price)
	return current, nil
}

func (a *App) addProduct(ctx context.Context) {
	product, err := a.promptProduct(models.Product{})
	if err != nil {
		return
	}
	if product.Name == "" {
		fmt.Fprintln(a.out, "Name is required.")
		return
	}

	created, err := a.api.CreateProduct(ctx, product)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	fmt.Fprintf(a.out, "Product %q created with id %d.\n", created.Name, created.ID)
}

func (a *App) editProduct(ctx context.Context, id int64) {
	current, ok := a.findProduct(ctx, id)
	if !ok {
		return
	}

	product, err := a.promptProduct(current)
	if err != nil {
		return
	}
	if product.Name == "" {
		fmt.Fprintln(a.out, "Name is required.")
		return
	}

	if _, err := a.api.UpdateProduct(ctx, id, product); err != nil {
		a.fail(ctx, err)
		return
	}
	fmt.Fprintln(a.out, "Product updated.")
}

func (a *App) deleteProduct(ctx context.Context, id int64) {
	sure, err := GetYesNo(a.reader, fmt.Sprintf("Delete product %d?", id), false, a.out)
	if err != nil || !sure {
		return
	}
	if err := a.api.DeleteProduct(ctx, id); err != nil {
		a.fail(ctx, err)
		return
	}
	fmt.Fprintln(a.out, "Product deleted.")
}

func (a *App) findProduct(ctx context.Context, id int64) (models.Product, bool) {
	products, err := a.api.ListProducts(ctx)
	if err != nil {
		a.fail(ctx, err)
		return models.Product{}, false
	}
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	fmt.Fprintf(a.out, "No product with id %d.\n", id)
	return models.Product{}, false
}
