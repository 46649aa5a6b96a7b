package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"cotizador/internal/common"
	"cotizador/internal/filex"
	"cotizador/internal/models"
	"cotizador/internal/quotation"
)

func (a *App) quotationsCommand(ctx context.Context, args []string) {
	if len(args) == 0 {
		a.listQuotations(ctx)
		return
	}
	switch args[0] {
	case "new":
		a.createQuotation(ctx)
	case "show":
		if id, ok := a.requireID(args[1:], "quotations show <id>"); ok {
			a.showQuotation(ctx, id)
		}
	case "status":
		a.updateQuotationStatus(ctx, args[1:])
	case "pdf":
		if id, ok := a.requireID(args[1:], "quotations pdf <id>"); ok {
			a.downloadQuotationPDF(ctx, id)
		}
	case "del":
		if id, ok := a.requireID(args[1:], "quotations del <id>"); ok {
			a.deleteQuotation(ctx, id)
		}
	default:
		fmt.Fprintln(a.out, "Usage: quotations [new|show <id>|status <id> <status>|pdf <id>|del <id>]")
	}
}

func (a *App) listQuotations(ctx context.Context) {
	quotations, err := a.api.ListQuotations(ctx)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	if len(quotations) == 0 {
		fmt.Fprintln(a.out, "No quotations yet. Use 'quotations new'.")
		return
	}
	for _, q := range quotations {
		clientName := ""
		if q.Client != nil {
			clientName = q.Client.Name
		}
		fmt.Fprintf(a.out, "%4d  %-12s  %-25s  %-9s  %10s\n",
			q.ID, q.QuotationNumber, clientName, q.Status, quotation.FormatMoney(q.Total))
	}
}

func (a *App) showQuotation(ctx context.Context, id int64) {
	q, err := a.api.GetQuotation(ctx, id)
	if err != nil {
		a.fail(ctx, err)
		return
	}

	fmt.Fprintf(a.out, "Quotation %s (id %d), status %s\n", q.QuotationNumber, q.ID, q.Status)
	if q.Client != nil {
		fmt.Fprintf(a.out, "Client:  %s\n", q.Client.Name)
	}
	if q.User != nil {
		fmt.Fprintf(a.out, "Advisor: %s\n", q.User.FullName)
	}
	fmt.Fprintf(a.out, "Valid until %s\n", q.ValidUntilDate)

	for i, item := range q.Items {
		tax := " "
		if item.IsTaxable {
			tax = "*"
		}
		fmt.Fprintf(a.out, "%3d %s %-30s %4d x %10s = %10s\n",
			i+1, tax, item.Description, item.Quantity,
			quotation.FormatMoney(item.UnitPrice),
			quotation.FormatMoney(item.UnitPrice*float64(item.Quantity)))
	}
	fmt.Fprintf(a.out, "Subtotal: %s\n", quotation.FormatMoney(q.Subtotal))
	fmt.Fprintf(a.out, "Tax (%g%%): %s\n", q.TaxPercentage, quotation.FormatMoney(q.TotalTax))
	fmt.Fprintf(a.out, "Total:    %s\n", quotation.FormatMoney(q.Total))
}

func (a *App) updateQuotationStatus(ctx context.Context, args []string) {
	id, ok := a.requireID(args, "quotations status <id> <draft|sent|approved|rejected>")
	if !ok {
		return
	}
	if len(args) < 2 || !validStatus(args[1]) {
		fmt.Fprintln(a.out, "Usage: quotations status <id> <draft|sent|approved|rejected>")
		return
	}

	q, err := a.api.UpdateQuotationStatus(ctx, id, args[1])
	if err != nil {
		a.fail(ctx, err)
		return
	}
	fmt.Fprintf(a.out, "Quotation %d is now %s.\n", q.ID, q.Status)
}

func validStatus(s string) bool {
	switch s {
	case models.StatusDraft, models.StatusSent, models.StatusApproved, models.StatusRejected:
		return true
	}
	return false
}

func (a *App) deleteQuotation(ctx context.Context, id int64) {
	sure, err := GetYesNo(a.reader, fmt.Sprintf("Delete quotation %d?", id), false, a.out)
	if err != nil || !sure {
		return
	}
	if err := a.api.DeleteQuotation(ctx, id); err != nil {
		a.fail(ctx, err)
		return
	}
	fmt.Fprintln(a.out, "Quotation deleted.")
}

func (a *App) downloadQuotationPDF(ctx context.Context, id int64) {
	data, err := a.api.DownloadQuotationPDF(ctx, id)
	if err != nil {
		a.fail(ctx, err)
		return
	}

	path, err := filex.SaveInDir(a.config.DownloadsDir, fmt.Sprintf("quotation_%d.pdf", id), data)
	if err != nil {
		a.log.Error(ctx, "failed to save pdf", "error", err)
		fmt.Fprintln(a.out, "Could not save the PDF file.")
		return
	}
	fmt.Fprintf(a.out, "Saved %s\n", path)
}

// quotationDraft is the editor's working state. Totals are derived from it
// on every change and never stored.
type quotationDraft struct {
	clientID      int64
	userID        int64
	taxPercentage float64
	otherCharges  float64
	validUntil    string
	items         []models.QuotationItem
}

// validate runs the client-side required-field checks that must pass before
// a create request is issued. Failures wrap common.ErrorValidation.
func (d *quotationDraft) validate() error {
	if d.clientID == 0 {
		return fmt.Errorf("%w: a client is required", common.ErrorValidation)
	}
	if d.userID == 0 {
		return fmt.Errorf("%w: an advisor is required", common.ErrorValidation)
	}
	if len(d.items) == 0 {
		return fmt.Errorf("%w: at least one item is required", common.ErrorValidation)
	}
	return nil
}

// removeItemAt removes the item at the (zero-based) index, preserving order.
func removeItemAt(items []models.QuotationItem, i int) []models.QuotationItem {
	if i < 0 || i >= len(items) {
		return items
	}
	return append(items[:i:i], items[i+1:]...)
}

func renderTotals(w io.Writer, calc *quotation.Calculator, items []models.QuotationItem, taxPercentage, otherCharges float64) {
	t := calc.Totals(items, taxPercentage)
	fmt.Fprintf(w, "Subtotal: %s   Tax (%g%%): %s   Total: %s\n",
		quotation.FormatMoney(t.Subtotal), taxPercentage,
		quotation.FormatMoney(t.TotalTax), quotation.FormatMoney(t.Total+otherCharges))
}

func (a *App) createQuotation(ctx context.Context) {
	clients, err := a.api.ListClients(ctx)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	advisors, err := a.api.ListUsers(ctx)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	products, err := a.api.ListProducts(ctx)
	if err != nil {
		a.fail(ctx, err)
		return
	}

	if len(clients) == 0 || len(advisors) == 0 {
		fmt.Fprintln(a.out, "You need at least one client and one advisor before creating a quotation.")
		return
	}

	draft := quotationDraft{
		taxPercentage: 16,
		validUntil:    time.Now().AddDate(0, 0, 30).Format("2006-01-02"),
	}

	fmt.Fprintln(a.out, "Clients:")
	for _, c := range clients {
		fmt.Fprintf(a.out, "  %d: %s\n", c.ID, c.Name)
	}
	clientText, err := GetSimpleText(a.reader, "Client id", a.out)
	if err != nil {
		return
	}
	draft.clientID = int64(quotation.CoerceInt(clientText))

	fmt.Fprintln(a.out, "Advisors:")
	for _, u := range advisors {
		fmt.Fprintf(a.out, "  %d: %s\n", u.ID, u.FullName)
	}
	advisorText, err := GetSimpleText(a.reader, "Advisor id", a.out)
	if err != nil {
		return
	}
	draft.userID = int64(quotation.CoerceInt(advisorText))

	taxText, err := GetDefaultedText(a.reader, "Tax percentage", "16", a.out)
	if err != nil {
		return
	}
	draft.taxPercentage = quotation.CoerceNumber(taxText)

	chargesText, err := GetDefaultedText(a.reader, "Other charges", "0", a.out)
	if err != nil {
		return
	}
	draft.otherCharges = quotation.CoerceNumber(chargesText)

	validText, err := GetDefaultedText(a.reader, "Valid until (YYYY-MM-DD)", draft.validUntil, a.out)
	if err != nil {
		return
	}
	draft.validUntil = validText

	calc := &quotation.Calculator{}

	for {
		a.renderItems(draft.items)
		renderTotals(a.out, calc, draft.items, draft.taxPercentage, draft.otherCharges)
		cmdLine, err := GetSimpleText(a.reader,
			"Item commands: add, edit <n>, del <n>, tax <n>, done, cancel", a.out)
		if err != nil {
			return
		}

		switch {
		case cmdLine == "add":
			item, ok := a.promptItem(products)
			if !ok {
				continue
			}
			draft.items = append(draft.items, item)
		case len(cmdLine) > 5 && cmdLine[:5] == "edit ":
			i := quotation.CoerceInt(cmdLine[5:]) - 1
			if i < 0 || i >= len(draft.items) {
				fmt.Fprintln(a.out, "No such item.")
				continue
			}
			if item, ok := a.editItem(draft.items[i]); ok {
				draft.items[i] = item
			}
		case len(cmdLine) > 4 && cmdLine[:4] == "del ":
			draft.items = removeItemAt(draft.items, quotation.CoerceInt(cmdLine[4:])-1)
		case len(cmdLine) > 4 && cmdLine[:4] == "tax ":
			i := quotation.CoerceInt(cmdLine[4:]) - 1
			if i >= 0 && i < len(draft.items) {
				draft.items[i].IsTaxable = !draft.items[i].IsTaxable
			}
		case cmdLine == "cancel":
			fmt.Fprintln(a.out, "Quotation discarded.")
			return
		case cmdLine == "done":
			if err := draft.validate(); err != nil {
				fmt.Fprintf(a.out, "Cannot save: %s.\n", err)
				continue
			}
			a.submitQuotation(ctx, draft)
			return
		default:
			fmt.Fprintln(a.out, "Unknown item command.")
		}
	}
}

func (a *App) renderItems(items []models.QuotationItem) {
	for i, item := range items {
		tax := " "
		if item.IsTaxable {
			tax = "*"
		}
		fmt.Fprintf(a.out, "%3d %s %-30s %4d x %10s\n",
			i+1, tax, item.Description, item.Quantity, quotation.FormatMoney(item.UnitPrice))
	}
}

// editItem re-prompts every field of an existing item; Enter keeps the
// current value.
func (a *App) editItem(item models.QuotationItem) (models.QuotationItem, bool) {
	description, err := GetDefaultedText(a.reader, "Description", item.Description, a.out)
	if err != nil {
		return item, false
	}
	item.Description = description

	priceText, err := GetDefaultedText(a.reader, "Unit price", fmt.Sprintf("%g", item.UnitPrice), a.out)
	if err != nil {
		return item, false
	}
	item.UnitPrice = quotation.CoerceNumber(priceText)

	qtyText, err := GetDefaultedText(a.reader, "Quantity", fmt.Sprintf("%d", item.Quantity), a.out)
	if err != nil {
		return item, false
	}
	item.Quantity = quotation.CoerceInt(qtyText)

	taxable, err := GetYesNo(a.reader, "Taxable?", item.IsTaxable, a.out)
	if err != nil {
		return item, false
	}
	item.IsTaxable = taxable

	return item, true
}

// promptItem reads one line item. Entering a product id prefills description
// and unit price from the catalog; leaving it empty makes a free-text row.
func (a *App) promptItem(products []models.Product) (models.QuotationItem, bool) {
	var item models.QuotationItem

	productText, err := GetSimpleText(a.reader, "Product id (empty for free text)", a.out)
	if err != nil {
		return item, false
	}
	if productText != "" {
		id := int64(quotation.CoerceInt(productText))
		for _, p := range products {
			if p.ID == id {
				item.ProductID = p.ID
				item.Description = p.Description
				item.UnitPrice = p.Price
				break
			}
		}
		if item.ProductID == 0 {
			fmt.Fprintln(a.out, "No such product; making a free-text row.")
		}
	}

	description, err := GetDefaultedText(a.reader, "Description", item.Description, a.out)
	if err != nil {
		return item, false
	}
	item.Description = description

	priceText, err := GetDefaultedText(a.reader, "Unit price", fmt.Sprintf("%g", item.UnitPrice), a.out)
	if err != nil {
		return item, false
	}
	item.UnitPrice = quotation.CoerceNumber(priceText)

	qtyText, err := GetDefaultedText(a.reader, "Quantity", "1", a.out)
	if err != nil {
		return item, false
	}
	item.Quantity = quotation.CoerceInt(qtyText)

	taxable, err := GetYesNo(a.reader, "Taxable?", true, a.out)
	if err != nil {
		return item, false
	}
	item.IsTaxable = taxable

	return item, true
}

func (a *App) submitQuotation(ctx context.Context, draft quotationDraft) {
	q := models.Quotation{
		ClientID:       draft.clientID,
		UserID:         draft.userID,
		ValidUntilDate: draft.validUntil,
		TaxPercentage:  draft.taxPercentage,
		OtherCharges:   draft.otherCharges,
		Items:          draft.items,
	}

	created, err := a.api.CreateQuotation(ctx, q)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	fmt.Fprintf(a.out, "Quotation %s created (total %s).\n",
		created.QuotationNumber, quotation.FormatMoney(created.Total))
}
