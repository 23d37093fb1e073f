package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"custdesk/internal/client/api"
	"custdesk/internal/client/validation"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for an employee ID and password, validates them locally, and
// attempts to authenticate via the session manager.
//
// A 401 from the backend renders a fixed invalid-credentials message rather
// than the server's own text. Any other API failure renders its normalized
// message. On success the user is taken straight to the customer view. The
// password byte slice is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	employeeID, err := getSimpleText(a.reader, "Enter employee ID", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	if errs := validation.ValidateLoginForm(employeeID, string(password)); len(errs) > 0 {
		printFieldErrors(a.out, errs)
		return nil
	}

	if err := a.session.Login(ctx, api.Credentials{Username: employeeID, Password: string(password)}); err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.Status == 401 {
			fmt.Fprintln(a.out, "Invalid employee ID or password.")
		} else {
			fmt.Fprintf(a.out, "Login failed: %s\n", err.Error())
		}
		return err
	}

	return a.ShowCustomers(ctx)
}

// Signup prompts for the registration fields, validates them locally, and
// attempts to create an account. The session is untouched either way.
func (a *App) Signup(ctx context.Context) error {
	employeeID, err := getSimpleText(a.reader, "Enter employee ID", a.out)
	if err != nil {
		return err
	}
	employeeName, err := getSimpleText(a.reader, "Enter employee name", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	if errs := validation.ValidateSignupForm(employeeID, employeeName, string(password)); len(errs) > 0 {
		printFieldErrors(a.out, errs)
		return nil
	}

	result, err := a.session.Signup(ctx, api.SignupRequest{
		EmployeeID:   employeeID,
		EmployeeName: employeeName,
		Password:     string(password),
	})
	if err != nil {
		fmt.Fprintf(a.out, "Signup failed: %s\n", err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Success! Registered with id %s. You can now login.\n", result.ID)
	return nil
}

// Logout clears the stored and in-memory session. It never fails.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

func printFieldErrors(w io.Writer, errs map[string]string) {
	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		fmt.Fprintf(w, "%s: %s\n", field, errs[field])
	}
}
