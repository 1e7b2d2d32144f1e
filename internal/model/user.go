package model

import (
	"errors"
	"strings"
)

// Operator is the single account allowed past the login gate.
type Operator struct {
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

// MinPasswordLength is the shortest accepted operator password.
const MinPasswordLength = 8

// ValidateCredentials checks a configured operator username and password.
func ValidateCredentials(username, password string) error {
	if strings.TrimSpace(username) == "" {
		return errors.New("username required")
	}
	if len(password) < MinPasswordLength {
		return errors.New("password must be at least 8 characters")
	}
	return nil
}
