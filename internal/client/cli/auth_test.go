package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"custdesk/internal/client/api"
	"custdesk/internal/client/credstore"
	"custdesk/internal/client/list"
	"custdesk/internal/client/session"
	"custdesk/internal/logging"
)

// fakeClient is a scriptable api.Client shared by the cli tests.
type fakeClient struct {
	loginResult *api.LoginResult
	loginErr    error
	loginCreds  api.Credentials

	signupResult *api.SignupResult
	signupErr    error
	signupReq    api.SignupRequest

	listFn    func(page, pageSize int) (*api.CustomerPage, error)
	listCalls int

	created   *api.Customer
	createErr error
	createReq api.CustomerRequest

	updated   *api.Customer
	updateErr error
	updateID  string

	deleteErr error
	deletedID string
}

func (f *fakeClient) Authenticate(_ context.Context, creds api.Credentials) (*api.LoginResult, error) {
	f.loginCreds = creds
	return f.loginResult, f.loginErr
}

func (f *fakeClient) Register(_ context.Context, req api.SignupRequest) (*api.SignupResult, error) {
	f.signupReq = req
	return f.signupResult, f.signupErr
}

func (f *fakeClient) ListCustomers(_ context.Context, page, pageSize int) (*api.CustomerPage, error) {
	f.listCalls++
	if f.listFn != nil {
		return f.listFn(page, pageSize)
	}
	return &api.CustomerPage{Customers: []api.Customer{}, CurrentPage: page, TotalPages: 1, PageSize: pageSize}, nil
}

func (f *fakeClient) CreateCustomer(_ context.Context, req api.CustomerRequest) (*api.Customer, error) {
	f.createReq = req
	return f.created, f.createErr
}

func (f *fakeClient) UpdateCustomer(_ context.Context, id string, req api.CustomerRequest) (*api.Customer, error) {
	f.updateID = id
	return f.updated, f.updateErr
}

func (f *fakeClient) DeleteCustomer(_ context.Context, id string) error {
	f.deletedID = id
	return f.deleteErr
}

func newTestApp(t *testing.T, client api.Client) (*App, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	a := &App{
		logger:  logger,
		api:     client,
		session: session.NewManager(client, credstore.NewMemoryStore(), logger),
		list:    list.NewController(client.ListCustomers, 10),
		reader:  bufio.NewReader(strings.NewReader("")),
		out:     &out,
	}
	t.Cleanup(a.list.Close)
	return a, &out
}

func stubPrompts(t *testing.T, answers ...string) {
	t.Helper()
	orig := getSimpleText
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			return "", io.EOF
		}
		a := answers[i]
		i++
		return a, nil
	}
	t.Cleanup(func() { getSimpleText = orig })
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(_ io.Writer) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { getPassword = orig })
}

func TestLogin_Success(t *testing.T) {
	f := &fakeClient{
		loginResult: &api.LoginResult{
			AccessToken: "tok-1",
			User:        map[string]any{"employee_id": "emp001"},
		},
	}
	a, out := newTestApp(t, f)
	stubPrompts(t, "emp001")
	stubPassword(t, "secret")

	err := a.Login(context.Background())

	require.NoError(t, err)
	assert.True(t, a.session.IsAuthenticated())
	assert.Equal(t, api.Credentials{Username: "emp001", Password: "secret"}, f.loginCreds)
	assert.Contains(t, out.String(), "Welcome, emp001!")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	f := &fakeClient{loginErr: &api.Error{Message: "invalid credentials", Status: 401}}
	a, out := newTestApp(t, f)
	stubPrompts(t, "emp001")
	stubPassword(t, "wrong")

	err := a.Login(context.Background())

	require.Error(t, err)
	assert.False(t, a.session.IsAuthenticated())
	assert.Contains(t, out.String(), "Invalid employee ID or password.")
	assert.NotContains(t, out.String(), "invalid credentials")
}

func TestLogin_OtherFailureRendersMessage(t *testing.T) {
	f := &fakeClient{loginErr: &api.Error{Message: "Unknown error", Status: 0}}
	a, out := newTestApp(t, f)
	stubPrompts(t, "emp001")
	stubPassword(t, "secret")

	err := a.Login(context.Background())

	require.Error(t, err)
	assert.Contains(t, out.String(), "Login failed: Unknown error")
}

func TestLogin_ValidationStopsBeforeAPI(t *testing.T) {
	f := &fakeClient{}
	a, out := newTestApp(t, f)
	stubPrompts(t, "e!") // too short and not alphanumeric
	stubPassword(t, "secret")

	err := a.Login(context.Background())

	require.NoError(t, err)
	assert.Empty(t, f.loginCreds.Username)
	assert.Contains(t, out.String(), "employee_id:")
}

func TestSignup_Success(t *testing.T) {
	f := &fakeClient{signupResult: &api.SignupResult{ID: "42"}}
	a, out := newTestApp(t, f)
	stubPrompts(t, "emp001", "Jane Smith")
	stubPassword(t, "Str0ng!pass")

	err := a.Signup(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "emp001", f.signupReq.EmployeeID)
	assert.Equal(t, "Jane Smith", f.signupReq.EmployeeName)
	assert.Contains(t, out.String(), "Registered with id 42")
	assert.False(t, a.session.IsAuthenticated())
}

func TestSignup_WeakPasswordRejectedLocally(t *testing.T) {
	f := &fakeClient{}
	a, out := newTestApp(t, f)
	stubPrompts(t, "emp001", "Jane Smith")
	stubPassword(t, "weak")

	err := a.Signup(context.Background())

	require.NoError(t, err)
	assert.Empty(t, f.signupReq.EmployeeID)
	assert.Contains(t, out.String(), "password:")
}

func TestSignup_APIFailure(t *testing.T) {
	f := &fakeClient{signupErr: &api.Error{Message: "employee already exists", Status: 409}}
	a, out := newTestApp(t, f)
	stubPrompts(t, "emp001", "Jane Smith")
	stubPassword(t, "Str0ng!pass")

	err := a.Signup(context.Background())

	require.Error(t, err)
	assert.Contains(t, out.String(), "Signup failed: employee already exists")
}

func TestLogout(t *testing.T) {
	f := &fakeClient{
		loginResult: &api.LoginResult{AccessToken: "tok-1"},
	}
	a, out := newTestApp(t, f)
	require.NoError(t, a.session.Login(context.Background(), api.Credentials{Username: "emp001", Password: "x"}))
	require.True(t, a.session.IsAuthenticated())

	err := a.Logout(context.Background())

	require.NoError(t, err)
	assert.False(t, a.session.IsAuthenticated())
	assert.Contains(t, out.String(), "Logged out.")
}
