package service

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// Authenticator validates the shared admin secret. The interface exists so
// the static-password scheme can later be swapped for real session/token
// issuance without touching handlers.
type Authenticator interface {
	Validar(password string) bool
}

type staticAuthenticator struct {
	hash     string // bcrypt hash, preferred when set
	password string
}

// NewStaticAuthenticator builds the single-operator authenticator. When a
// bcrypt hash is configured it wins over the plaintext password; the
// plaintext path compares in constant time.
func NewStaticAuthenticator(hash, password string) Authenticator {
	return &staticAuthenticator{hash: hash, password: password}
}

func (a *staticAuthenticator) Validar(password string) bool {
	if a.hash != "" {
		return bcrypt.CompareHashAndPassword([]byte(a.hash), []byte(password)) == nil
	}
	if a.password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a.password), []byte(password)) == 1
}
