package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmployeeID(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{name: "valid", value: "emp123", valid: true},
		{name: "trimmed", value: "  emp123  ", valid: true},
		{name: "empty", value: ""},
		{name: "blank", value: "   "},
		{name: "too short", value: "ab1"},
		{name: "too long", value: strings.Repeat("a", 21)},
		{name: "non-alphanumeric", value: "emp_123"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msg := ValidateEmployeeID(tc.value)
			if tc.valid {
				assert.Empty(t, msg)
			} else {
				assert.NotEmpty(t, msg)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{name: "strong", value: "Abcdef1!", valid: true},
		{name: "empty", value: ""},
		{name: "short", value: "Ab1!"},
		{name: "no upper", value: "abcdef1!"},
		{name: "no digit", value: "Abcdefg!"},
		{name: "no symbol", value: "Abcdefg1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msg := ValidatePassword(tc.value)
			if tc.valid {
				assert.Empty(t, msg)
			} else {
				assert.NotEmpty(t, msg)
			}
		})
	}
}

func TestValidateLoginPassword_OnlyRequiresNonEmpty(t *testing.T) {
	assert.NotEmpty(t, ValidateLoginPassword(""))
	assert.Empty(t, ValidateLoginPassword("weak"))
}

func TestValidateCustomerContact(t *testing.T) {
	assert.Empty(t, ValidateCustomerContact("5551234567"))
	assert.NotEmpty(t, ValidateCustomerContact(""))
	assert.NotEmpty(t, ValidateCustomerContact("555-123"))
	assert.NotEmpty(t, ValidateCustomerContact("123456"))          // too short
	assert.NotEmpty(t, ValidateCustomerContact("1234567890123456")) // too long
}

func TestValidateCustomerForm(t *testing.T) {
	errs := ValidateCustomerForm(CustomerForm{
		Name:      "Acme Corp",
		Contact:   "5551234567",
		Address:   "1 Main St",
		ManagedBy: "emp123",
	})
	assert.Empty(t, errs)

	errs = ValidateCustomerForm(CustomerForm{})
	assert.Len(t, errs, 4)
	assert.Contains(t, errs, "customer_name")
	assert.Contains(t, errs, "customer_contact")
	assert.Contains(t, errs, "customer_address")
	assert.Contains(t, errs, "managed_by")
}

func TestValidateSignupForm(t *testing.T) {
	errs := ValidateSignupForm("emp123", "Alice Smith", "Abcdef1!")
	assert.Empty(t, errs)

	errs = ValidateSignupForm("", "", "")
	assert.Len(t, errs, 3)
}

func TestValidateLoginForm(t *testing.T) {
	errs := ValidateLoginForm("emp123", "anything")
	assert.Empty(t, errs)

	errs = ValidateLoginForm("x", "")
	assert.Contains(t, errs, "employee_id")
	assert.Contains(t, errs, "password")
}
