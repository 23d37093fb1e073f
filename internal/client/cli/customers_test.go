package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"custdesk/internal/client/api"
)

func sampleCustomers(n int) []api.Customer {
	out := make([]api.Customer, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, api.Customer{
			ID:        fmt.Sprintf("c%d", i),
			Name:      fmt.Sprintf("Customer %d", i),
			Contact:   "5551234567",
			Address:   "1 Main St",
			ManagedBy: "emp001",
		})
	}
	return out
}

// pagedClient serves pages out of a fixed backing set, the way the server
// endpoint slices its table.
func pagedClient(records []api.Customer) *fakeClient {
	f := &fakeClient{}
	f.listFn = func(page, pageSize int) (*api.CustomerPage, error) {
		total := len(records)
		totalPages := (total + pageSize - 1) / pageSize
		if totalPages == 0 {
			totalPages = 1
		}
		start := (page - 1) * pageSize
		if start > total {
			start = total
		}
		end := start + pageSize
		if end > total {
			end = total
		}
		return &api.CustomerPage{
			Customers:   records[start:end],
			CurrentPage: page,
			TotalPages:  totalPages,
			PageSize:    pageSize,
			TotalCount:  total,
		}, nil
	}
	return f
}

func loginTestApp(t *testing.T, f *fakeClient) (*App, *strings.Builder) {
	t.Helper()
	a, _ := newTestApp(t, f)
	var out strings.Builder
	a.out = &out
	f.loginResult = &api.LoginResult{AccessToken: "tok", User: map[string]any{"employee_id": "emp001"}}
	require.NoError(t, a.session.Login(context.Background(), api.Credentials{Username: "emp001", Password: "x"}))
	return a, &out
}

func TestShowCustomers_RequiresLogin(t *testing.T) {
	f := pagedClient(sampleCustomers(3))
	a, out := newTestApp(t, f)

	err := a.ShowCustomers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, f.listCalls)
	assert.Contains(t, out.String(), "not logged in")
	assert.NotContains(t, out.String(), "Customer 1")
}

func TestShowCustomers_GuardReappliesAfterLogout(t *testing.T) {
	f := pagedClient(sampleCustomers(3))
	a, out := loginTestApp(t, f)
	require.NoError(t, a.ShowCustomers(context.Background()))
	fetchesBefore := f.listCalls

	require.NoError(t, a.Logout(context.Background()))
	require.NoError(t, a.ShowCustomers(context.Background()))

	assert.Equal(t, fetchesBefore, f.listCalls)
	assert.Contains(t, out.String(), "not logged in")
}

func TestShowCustomers_RendersTableAndControls(t *testing.T) {
	f := pagedClient(sampleCustomers(12))
	a, out := loginTestApp(t, f)

	err := a.ShowCustomers(context.Background())

	require.NoError(t, err)
	s := out.String()
	assert.Contains(t, s, "Welcome, emp001!")
	assert.Contains(t, s, "Customer 1")
	assert.Contains(t, s, "Customer 10")
	assert.NotContains(t, s, "Customer 11")
	assert.Contains(t, s, "Page 1 of 2 (12 total)")
	assert.Contains(t, s, "[1] 2 next")
}

func TestGoToPage(t *testing.T) {
	f := pagedClient(sampleCustomers(25))
	a, out := loginTestApp(t, f)
	require.NoError(t, a.ShowCustomers(context.Background()))

	require.NoError(t, a.GoToPage(context.Background(), []string{"3"}))

	s := out.String()
	assert.Contains(t, s, "Customer 21")
	assert.Contains(t, s, "Page 3 of 3 (25 total)")
	assert.Equal(t, 3, a.list.Snapshot().PageIndex)
}

func TestGoToPage_OutOfRangeIsNoOp(t *testing.T) {
	f := pagedClient(sampleCustomers(12))
	a, _ := loginTestApp(t, f)
	require.NoError(t, a.ShowCustomers(context.Background()))
	fetchesBefore := f.listCalls

	require.NoError(t, a.GoToPage(context.Background(), []string{"99"}))

	assert.Equal(t, fetchesBefore, f.listCalls)
	assert.Equal(t, 1, a.list.Snapshot().PageIndex)
}

func TestGoToPage_BadArgument(t *testing.T) {
	f := pagedClient(sampleCustomers(3))
	a, out := loginTestApp(t, f)

	require.NoError(t, a.GoToPage(context.Background(), []string{"abc"}))
	require.NoError(t, a.GoToPage(context.Background(), nil))

	assert.Contains(t, out.String(), "Page must be a number.")
	assert.Contains(t, out.String(), "Usage: page <n>")
	assert.Equal(t, 0, f.listCalls)
}

func TestNextPrevPage(t *testing.T) {
	f := pagedClient(sampleCustomers(25))
	a, _ := loginTestApp(t, f)
	require.NoError(t, a.ShowCustomers(context.Background()))

	require.NoError(t, a.NextPage(context.Background()))
	assert.Equal(t, 2, a.list.Snapshot().PageIndex)

	require.NoError(t, a.PrevPage(context.Background()))
	assert.Equal(t, 1, a.list.Snapshot().PageIndex)

	// already at the first page
	fetchesBefore := f.listCalls
	require.NoError(t, a.PrevPage(context.Background()))
	assert.Equal(t, fetchesBefore, f.listCalls)
}

func TestSetPageSize_ResetsToFirstPage(t *testing.T) {
	f := pagedClient(sampleCustomers(25))
	a, _ := loginTestApp(t, f)
	require.NoError(t, a.ShowCustomers(context.Background()))
	require.NoError(t, a.GoToPage(context.Background(), []string{"3"}))

	require.NoError(t, a.SetPageSize(context.Background(), []string{"5"}))

	s := a.list.Snapshot()
	assert.Equal(t, 1, s.PageIndex)
	assert.Equal(t, 5, s.PageSize)
	assert.Equal(t, 5, len(s.Records))
}

func TestSetPageSize_RejectsNonPositive(t *testing.T) {
	f := pagedClient(sampleCustomers(3))
	a, out := loginTestApp(t, f)

	require.NoError(t, a.SetPageSize(context.Background(), []string{"0"}))
	require.NoError(t, a.SetPageSize(context.Background(), []string{"x"}))

	assert.Contains(t, out.String(), "Size must be a positive number.")
	assert.Equal(t, 0, f.listCalls)
}

func TestAddCustomer(t *testing.T) {
	f := pagedClient(sampleCustomers(3))
	f.created = &api.Customer{ID: "c99", Name: "Acme", Contact: "5551234567", Address: "2 Oak Ave", ManagedBy: "emp001"}
	a, out := loginTestApp(t, f)
	stubPrompts(t, "Acme", "5551234567", "2 Oak Ave", "emp001")

	err := a.AddCustomer(context.Background())

	require.NoError(t, err)
	assert.Equal(t, api.CustomerRequest{Name: "Acme", Contact: "5551234567", Address: "2 Oak Ave", ManagedBy: "emp001"}, f.createReq)
	assert.Contains(t, out.String(), "Created customer c99.")
	assert.Equal(t, 1, f.listCalls) // reloaded after create
}

func TestAddCustomer_ValidationStopsBeforeAPI(t *testing.T) {
	f := pagedClient(sampleCustomers(3))
	a, out := loginTestApp(t, f)
	stubPrompts(t, "Acme", "not-a-number", "2 Oak Ave", "emp001")

	err := a.AddCustomer(context.Background())

	require.NoError(t, err)
	assert.Empty(t, f.createReq.Name)
	assert.Contains(t, out.String(), "customer_contact:")
}

func TestEditCustomer(t *testing.T) {
	f := pagedClient(sampleCustomers(3))
	f.updated = &api.Customer{ID: "c2", Name: "Renamed", Contact: "5551234567", Address: "1 Main St", ManagedBy: "emp001"}
	a, out := loginTestApp(t, f)
	require.NoError(t, a.ShowCustomers(context.Background()))
	fetchesBefore := f.listCalls
	stubPrompts(t, "Renamed", "", "", "") // keep defaults for the rest

	err := a.EditCustomer(context.Background(), []string{"c2"})

	require.NoError(t, err)
	assert.Equal(t, "c2", f.updateID)
	assert.Contains(t, out.String(), "Updated customer c2.")
	assert.Equal(t, fetchesBefore, f.listCalls) // patched in place, no refetch

	var got *api.Customer
	for _, rec := range a.list.Snapshot().Records {
		if rec.ID == "c2" {
			rec := rec
			got = &rec
		}
	}
	require.NotNil(t, got)
	assert.Equal(t, "Renamed", got.Name)
}

func TestEditCustomer_NotOnCurrentPage(t *testing.T) {
	f := pagedClient(sampleCustomers(3))
	a, out := loginTestApp(t, f)
	require.NoError(t, a.ShowCustomers(context.Background()))

	err := a.EditCustomer(context.Background(), []string{"zzz"})

	require.NoError(t, err)
	assert.Empty(t, f.updateID)
	assert.Contains(t, out.String(), "Customer zzz is not on the current page.")
}

func TestDeleteCustomer_Confirmed(t *testing.T) {
	f := pagedClient(sampleCustomers(3))
	a, out := loginTestApp(t, f)
	require.NoError(t, a.ShowCustomers(context.Background()))
	a.reader = bufio.NewReader(strings.NewReader("y\n"))

	err := a.DeleteCustomer(context.Background(), []string{"c2"})

	require.NoError(t, err)
	assert.Equal(t, "c2", f.deletedID)
	assert.Contains(t, out.String(), "Deleted customer c2.")

	s := a.list.Snapshot()
	assert.Len(t, s.Records, 2)
	assert.Equal(t, 3, s.TotalCount) // totals stay until next refetch
}

func TestDeleteCustomer_Cancelled(t *testing.T) {
	f := pagedClient(sampleCustomers(3))
	a, out := loginTestApp(t, f)
	require.NoError(t, a.ShowCustomers(context.Background()))
	a.reader = bufio.NewReader(strings.NewReader("n\n"))

	err := a.DeleteCustomer(context.Background(), []string{"c2"})

	require.NoError(t, err)
	assert.Empty(t, f.deletedID)
	assert.Contains(t, out.String(), "Cancelled.")
	assert.Len(t, a.list.Snapshot().Records, 3)
}

func TestDeleteCustomer_APIFailureKeepsRow(t *testing.T) {
	f := pagedClient(sampleCustomers(3))
	f.deleteErr = &api.Error{Message: "boom", Status: 500}
	a, out := loginTestApp(t, f)
	require.NoError(t, a.ShowCustomers(context.Background()))
	a.reader = bufio.NewReader(strings.NewReader("y\n"))

	err := a.DeleteCustomer(context.Background(), []string{"c2"})

	require.Error(t, err)
	assert.Contains(t, out.String(), "Delete failed: boom")
	assert.Len(t, a.list.Snapshot().Records, 3)
}

func TestRefresh(t *testing.T) {
	f := pagedClient(sampleCustomers(3))
	a, _ := loginTestApp(t, f)
	require.NoError(t, a.ShowCustomers(context.Background()))

	require.NoError(t, a.Refresh(context.Background()))

	assert.Equal(t, 2, f.listCalls)
}
