package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/stocksync/stocksync/internal/model"
)

// ErrInvalidCredentials is returned for any failed login.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Gate is the login check for the single configured operator. Only the
// password hash is kept.
type Gate struct {
	operator model.Operator
}

// NewGate hashes password and returns a gate for username.
func NewGate(username, password string) (*Gate, error) {
	if err := model.ValidateCredentials(username, password); err != nil {
		return nil, fmt.Errorf("operator credentials: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}
	return &Gate{operator: model.Operator{Username: username, PasswordHash: string(hash)}}, nil
}

// Check verifies a username/password pair.
func (g *Gate) Check(username, password string) error {
	nameOK := subtle.ConstantTimeCompare([]byte(username), []byte(g.operator.Username)) == 1
	// Always run bcrypt so a wrong username costs the same as a wrong password.
	pwErr := bcrypt.CompareHashAndPassword([]byte(g.operator.PasswordHash), []byte(password))
	if !nameOK || pwErr != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// Username returns the operator's username.
func (g *Gate) Username() string {
	return g.operator.Username
}
