package mocks

import (
	"errors"

	"github.com/hector00/bloglist-api/internal/service/auth"
)

// ErrPasswordMismatch is returned by MockPasswordVerifier when scripted
// to reject.
var ErrPasswordMismatch = errors.New("password mismatch")

// MockPasswordVerifier is a configurable mock implementation of
// auth.PasswordVerifier. The zero value accepts every password.
type MockPasswordVerifier struct {
	CompareFn func(hashedPassword, password string) error
}

// Ensure MockPasswordVerifier implements auth.PasswordVerifier
var _ auth.PasswordVerifier = (*MockPasswordVerifier)(nil)

func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	return nil
}
