package customers

import "time"

type Customer struct {
	ID        string
	Name      string
	Contact   string
	Address   string
	ManagedBy string
	CreatedAt time.Time
}

// Page is one slice of the customer listing together with the pagination
// envelope the API returns.
type Page struct {
	Customers   []Customer
	CurrentPage int
	TotalPages  int
	PageSize    int
	TotalCount  int
}
