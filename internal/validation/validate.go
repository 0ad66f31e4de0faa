// Package validation holds the field checks applied to a candidate user
// record before any store mutation.
package validation

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/techhive/userdir/internal/model"
)

const (
	maxNameLength  = 50
	maxEmailLength = 75
	maxRoleLength  = 10
)

// User checks a candidate record and returns nil when it is acceptable.
// Checks run in a fixed order and stop at the first failure; the returned
// reason is the client-visible message.
func User(u model.User) error {
	if isBlank(u.FirstName) || isBlank(u.LastName) || isBlank(u.Email) || isBlank(u.Role) {
		return model.NewValidationError("All fields are required and cannot be empty.")
	}
	if utf8.RuneCountInString(u.FirstName) > maxNameLength {
		return model.NewValidationError("FirstName cannot exceed 50 characters.")
	}
	if utf8.RuneCountInString(u.LastName) > maxNameLength {
		return model.NewValidationError("LastName cannot exceed 50 characters.")
	}
	if utf8.RuneCountInString(u.Email) > maxEmailLength {
		return model.NewValidationError("Email cannot exceed 75 characters.")
	}
	if utf8.RuneCountInString(u.Role) > maxRoleLength {
		return model.NewValidationError("Role cannot exceed 10 characters.")
	}
	if !isValidEmail(u.Email) {
		return model.NewValidationError("Email is not in a valid format.")
	}
	if !strings.EqualFold(u.Role, model.RoleAdmin) && !strings.EqualFold(u.Role, model.RoleUser) {
		return model.NewValidationError("Role must be either 'Admin' or 'User'.")
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// isValidEmail accepts exactly the addresses the RFC 5322 parser accepts,
// and only when the parsed address round-trips unchanged. That rejects
// display names and angle-bracket forms.
func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	return addr.Address == email
}
