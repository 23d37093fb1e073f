// Package api implements the REST collaborator used by the custdesk client:
// authentication, registration, and paginated customer CRUD. All failures are
// normalized to *Error so callers can branch on the HTTP status when the
// transport produced a response.
package api

import "context"

// Credentials is the payload for Authenticate.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult is the success shape of Authenticate. User is optional and
// opaque; the only field the client reads from it is "employee_id".
type LoginResult struct {
	AccessToken string         `json:"access_token"`
	TokenType   string         `json:"token_type,omitempty"`
	User        map[string]any `json:"user,omitempty"`
}

// SignupRequest carries registration data. EmployeeID-based and email-based
// signup are both accepted by the backend.
type SignupRequest struct {
	Email        string `json:"email,omitempty"`
	EmployeeID   string `json:"employee_id,omitempty"`
	EmployeeName string `json:"employee_name,omitempty"`
	Password     string `json:"password"`
}

// SignupResult is the success shape of Register.
type SignupResult struct {
	ID string `json:"id"`
}

// Customer is a customer record as it appears on the wire. The id is assigned
// server-side and immutable after creation.
type Customer struct {
	ID        string `json:"customer_id"`
	Name      string `json:"customer_name"`
	Contact   string `json:"customer_contact"`
	Address   string `json:"customer_address"`
	ManagedBy string `json:"managed_by"`
}

// CustomerRequest is the payload for CreateCustomer and UpdateCustomer.
type CustomerRequest struct {
	Name      string `json:"customer_name"`
	Contact   string `json:"customer_contact"`
	Address   string `json:"customer_address"`
	ManagedBy string `json:"managed_by"`
}

// CustomerPage is one page of the customer listing.
type CustomerPage struct {
	Customers   []Customer `json:"customers"`
	CurrentPage int        `json:"current_page"`
	TotalPages  int        `json:"total_pages"`
	PageSize    int        `json:"page_size"`
	TotalCount  int        `json:"total_count"`
}

// Client is the remote API surface consumed by the session manager and the
// list controller. Implementations must return *Error for every failure.
type Client interface {
	Authenticate(ctx context.Context, creds Credentials) (*LoginResult, error)
	Register(ctx context.Context, req SignupRequest) (*SignupResult, error)
	ListCustomers(ctx context.Context, page, pageSize int) (*CustomerPage, error)
	CreateCustomer(ctx context.Context, req CustomerRequest) (*Customer, error)
	UpdateCustomer(ctx context.Context, id string, req CustomerRequest) (*Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
}
