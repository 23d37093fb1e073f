package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"custdesk/internal/client/api"
	"custdesk/internal/client/pagination"
	"custdesk/internal/client/validation"
)

// guard is the route check every customer command passes through. When the
// session is not authenticated nothing of the protected view is rendered;
// the user is pointed at the login command instead.
func (a *App) guard() bool {
	if a.session.IsAuthenticated() {
		return true
	}
	fmt.Fprintln(a.out, "You are not logged in. Use 'login' first.")
	return false
}

// ShowCustomers fetches and renders the current page of the customer table.
func (a *App) ShowCustomers(ctx context.Context) error {
	if !a.guard() {
		return nil
	}
	a.list.Load(ctx)
	a.renderList()
	return nil
}

// GoToPage jumps to the requested page. Out-of-range targets and the current
// page are no-ops, matching the navigation widget's rules.
func (a *App) GoToPage(ctx context.Context, args []string) error {
	if !a.guard() {
		return nil
	}
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: page <n>")
		return nil
	}
	page, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintln(a.out, "Page must be a number.")
		return nil
	}
	s := a.list.Snapshot()
	target, ok := pagination.PageTarget(s.PageIndex, s.TotalPages, page)
	if !ok {
		a.renderList()
		return nil
	}
	a.list.SetPage(ctx, target)
	a.renderList()
	return nil
}

// NextPage steps one page forward; at the last page it is a no-op.
func (a *App) NextPage(ctx context.Context) error {
	if !a.guard() {
		return nil
	}
	s := a.list.Snapshot()
	if target, ok := pagination.NextTarget(s.PageIndex, s.TotalPages); ok {
		a.list.SetPage(ctx, target)
	}
	a.renderList()
	return nil
}

// PrevPage steps one page back; at the first page it is a no-op.
func (a *App) PrevPage(ctx context.Context) error {
	if !a.guard() {
		return nil
	}
	s := a.list.Snapshot()
	if target, ok := pagination.PrevTarget(s.PageIndex, s.TotalPages); ok {
		a.list.SetPage(ctx, target)
	}
	a.renderList()
	return nil
}

// SetPageSize changes the page size and resets to the first page.
func (a *App) SetPageSize(ctx context.Context, args []string) error {
	if !a.guard() {
		return nil
	}
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: size <n>")
		return nil
	}
	size, err := strconv.Atoi(args[0])
	if err != nil || size < 1 {
		fmt.Fprintln(a.out, "Size must be a positive number.")
		return nil
	}
	a.list.SetPageSize(ctx, size)
	a.renderList()
	return nil
}

// AddCustomer prompts for the customer fields, validates them, creates the
// record, and reloads the list so totals reflect the new row.
func (a *App) AddCustomer(ctx context.Context) error {
	if !a.guard() {
		return nil
	}
	form, err := a.promptCustomerForm(validation.CustomerForm{})
	if err != nil {
		return err
	}
	if errs := validation.ValidateCustomerForm(*form); len(errs) > 0 {
		printFieldErrors(a.out, errs)
		return nil
	}

	created, err := a.api.CreateCustomer(ctx, api.CustomerRequest{
		Name:      form.Name,
		Contact:   form.Contact,
		Address:   form.Address,
		ManagedBy: form.ManagedBy,
	})
	if err != nil {
		fmt.Fprintf(a.out, "Create failed: %s\n", err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Created customer %s.\n", created.ID)
	a.list.Reload(ctx)
	a.renderList()
	return nil
}

// EditCustomer edits a customer shown on the current page. The updated record
// is patched into the in-memory list without a refetch.
func (a *App) EditCustomer(ctx context.Context, args []string) error {
	if !a.guard() {
		return nil
	}
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: edit <id>")
		return nil
	}
	id := args[0]

	current, ok := a.findOnPage(id)
	if !ok {
		fmt.Fprintf(a.out, "Customer %s is not on the current page.\n", id)
		return nil
	}

	form, err := a.promptCustomerForm(validation.CustomerForm{
		Name:      current.Name,
		Contact:   current.Contact,
		Address:   current.Address,
		ManagedBy: current.ManagedBy,
	})
	if err != nil {
		return err
	}
	if errs := validation.ValidateCustomerForm(*form); len(errs) > 0 {
		printFieldErrors(a.out, errs)
		return nil
	}

	updated, err := a.api.UpdateCustomer(ctx, id, api.CustomerRequest{
		Name:      form.Name,
		Contact:   form.Contact,
		Address:   form.Address,
		ManagedBy: form.ManagedBy,
	})
	if err != nil {
		fmt.Fprintf(a.out, "Update failed: %s\n", err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Updated customer %s.\n", updated.ID)
	a.list.ApplyUpdate(*updated)
	a.renderList()
	return nil
}

// DeleteCustomer confirms with the user, deletes the record, and removes the
// row from the in-memory list. Totals stay as-is until the next refetch.
func (a *App) DeleteCustomer(ctx context.Context, args []string) error {
	if !a.guard() {
		return nil
	}
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: delete <id>")
		return nil
	}
	id := args[0]

	if _, ok := a.findOnPage(id); !ok {
		fmt.Fprintf(a.out, "Customer %s is not on the current page.\n", id)
		return nil
	}

	confirmed, err := GetConfirm(a.reader, fmt.Sprintf("Delete customer %s?", id), a.out)
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	if err := a.api.DeleteCustomer(ctx, id); err != nil {
		fmt.Fprintf(a.out, "Delete failed: %s\n", err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Deleted customer %s.\n", id)
	a.list.ApplyDelete(id)
	a.renderList()
	return nil
}

// Refresh refetches the current page at the current size.
func (a *App) Refresh(ctx context.Context) error {
	if !a.guard() {
		return nil
	}
	a.list.Reload(ctx)
	a.renderList()
	return nil
}

func (a *App) findOnPage(id string) (api.Customer, bool) {
	for _, rec := range a.list.Snapshot().Records {
		if rec.ID == id {
			return rec, true
		}
	}
	return api.Customer{}, false
}

// promptCustomerForm reads the four editable customer fields. Current values
// are shown as defaults; an empty answer keeps the default.
func (a *App) promptCustomerForm(defaults validation.CustomerForm) (*validation.CustomerForm, error) {
	form := defaults
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Customer name", &form.Name},
		{"Customer contact", &form.Contact},
		{"Customer address", &form.Address},
		{"Managed by", &form.ManagedBy},
	}
	for _, f := range fields {
		prompt := f.prompt
		if *f.dst != "" {
			prompt = fmt.Sprintf("%s [%s]", f.prompt, *f.dst)
		}
		answer, err := getSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return nil, err
		}
		if answer != "" {
			*f.dst = answer
		}
	}
	return &form, nil
}

// renderList prints the welcome line, the customer table, and the pagination
// controls from the controller's current snapshot.
func (a *App) renderList() {
	s := a.list.Snapshot()

	name := a.session.EmployeeID()
	if name == "" {
		name = "Guest"
	}
	fmt.Fprintf(a.out, "Welcome, %s!\n", name)

	if s.Err != "" {
		fmt.Fprintf(a.out, "Error: %s\n", s.Err)
		return
	}
	if len(s.Records) == 0 {
		fmt.Fprintln(a.out, "No customers found.")
		return
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCONTACT\tADDRESS\tMANAGED BY")
	for _, c := range s.Records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Contact, c.Address, c.ManagedBy)
	}
	_ = tw.Flush()

	fmt.Fprintf(a.out, "Page %d of %d (%d total)\n", s.PageIndex, s.TotalPages, s.TotalCount)
	fmt.Fprintln(a.out, renderControls(pagination.Controls(s.PageIndex, s.TotalPages, s.Loading)))
}

// renderControls formats the navigation widget on one line: the current page
// is bracketed, disabled controls are dimmed with a dash.
func renderControls(controls []pagination.Control) string {
	parts := make([]string, 0, len(controls))
	for _, c := range controls {
		switch {
		case c.Current:
			parts = append(parts, "["+c.Label+"]")
		case c.Disabled:
			parts = append(parts, "-"+c.Label+"-")
		default:
			parts = append(parts, c.Label)
		}
	}
	return strings.Join(parts, " ")
}
