package store

import (
	"fmt"
	"strings"
)

const minPasswordLength = 6

// ValidationError is a client-side form failure. It never reaches the
// network; the caller shows it inline next to the offending field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// RegistrationForm is the raw register input before validation.
type RegistrationForm struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// Validate checks the form the same way the login page does: every
// field present, a plausible email, and matching passwords of at
// least six characters.
func (f RegistrationForm) Validate() error {
	if strings.TrimSpace(f.Username) == "" {
		return &ValidationError{Field: "username", Message: "username is required"}
	}
	if strings.TrimSpace(f.Email) == "" {
		return &ValidationError{Field: "email", Message: "email is required"}
	}
	if !strings.Contains(f.Email, "@") {
		return &ValidationError{Field: "email", Message: "email address is not valid"}
	}
	if f.Password == "" {
		return &ValidationError{Field: "password", Message: "password is required"}
	}
	if len(f.Password) < minPasswordLength {
		return &ValidationError{Field: "password", Message: fmt.Sprintf("password must be at least %d characters", minPasswordLength)}
	}
	if f.Password != f.ConfirmPassword {
		return &ValidationError{Field: "confirmPassword", Message: "passwords do not match"}
	}
	return nil
}
