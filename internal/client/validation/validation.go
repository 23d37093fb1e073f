// Package validation holds the pure field predicates used by the CLI forms.
// Each predicate returns a human-readable message, or "" when the value is
// acceptable; form-level helpers aggregate them into field→message maps.
package validation

import (
	"strings"
	"unicode"
)

func ValidateEmployeeID(value string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		return "Employee ID is required."
	}
	for _, r := range v {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return "Employee ID must be alphanumeric."
		}
	}
	if len(v) < 4 || len(v) > 20 {
		return "Employee ID must be 4 to 20 characters long."
	}
	return ""
}

func ValidateEmployeeName(value string) string {
	if strings.TrimSpace(value) == "" {
		return "Employee name is required."
	}
	return ""
}

// ValidatePassword enforces the signup password policy.
func ValidatePassword(value string) string {
	if value == "" {
		return "Password is required."
	}
	if len(value) < 8 {
		return "Password must be at least 8 characters long."
	}
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range value {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit || !hasSymbol {
		return "Password must include uppercase, lowercase, number, and special character."
	}
	return ""
}

// ValidateLoginPassword only requires non-empty: login must accept passwords
// created under any historical policy.
func ValidateLoginPassword(value string) string {
	if value == "" {
		return "Password is required."
	}
	return ""
}

func ValidateCustomerName(value string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		return "Customer name is required."
	}
	if len(v) > 100 {
		return "Customer name must be at most 100 characters long."
	}
	return ""
}

func ValidateCustomerContact(value string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		return "Customer contact is required."
	}
	for _, r := range v {
		if !unicode.IsDigit(r) {
			return "Customer contact must contain digits only."
		}
	}
	if len(v) < 7 || len(v) > 15 {
		return "Customer contact must be 7 to 15 digits long."
	}
	return ""
}

func ValidateCustomerAddress(value string) string {
	if strings.TrimSpace(value) == "" {
		return "Customer address is required."
	}
	return ""
}

func ValidateManagedBy(value string) string {
	if strings.TrimSpace(value) == "" {
		return "Managed by is required."
	}
	return ""
}

// CustomerForm is the editable subset of a customer record.
type CustomerForm struct {
	Name      string
	Contact   string
	Address   string
	ManagedBy string
}

// ValidateCustomerForm returns a field→message map; an empty map means the
// form is acceptable.
func ValidateCustomerForm(form CustomerForm) map[string]string {
	errs := make(map[string]string)
	if msg := ValidateCustomerName(form.Name); msg != "" {
		errs["customer_name"] = msg
	}
	if msg := ValidateCustomerContact(form.Contact); msg != "" {
		errs["customer_contact"] = msg
	}
	if msg := ValidateCustomerAddress(form.Address); msg != "" {
		errs["customer_address"] = msg
	}
	if msg := ValidateManagedBy(form.ManagedBy); msg != "" {
		errs["managed_by"] = msg
	}
	return errs
}

// ValidateSignupForm aggregates the signup field predicates.
func ValidateSignupForm(employeeID, employeeName, password string) map[string]string {
	errs := make(map[string]string)
	if msg := ValidateEmployeeID(employeeID); msg != "" {
		errs["employee_id"] = msg
	}
	if msg := ValidateEmployeeName(employeeName); msg != "" {
		errs["employee_name"] = msg
	}
	if msg := ValidatePassword(password); msg != "" {
		errs["password"] = msg
	}
	return errs
}

// ValidateLoginForm aggregates the login field predicates.
func ValidateLoginForm(employeeID, password string) map[string]string {
	errs := make(map[string]string)
	if msg := ValidateEmployeeID(employeeID); msg != "" {
		errs["employee_id"] = msg
	}
	if msg := ValidateLoginPassword(password); msg != "" {
		errs["password"] = msg
	}
	return errs
}
