package auth

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// CredentialScheme abstracts how credential secrets are stored and compared,
// so a hashing scheme can replace direct comparison without touching the
// token issuance contract.
type CredentialScheme interface {
	Encode(plain string) (string, error)
	Verify(stored, candidate string) bool
}

// PlaintextScheme stores and compares secrets verbatim. This is the default
// scheme and matches the historical behavior of the service.
type PlaintextScheme struct{}

// Encode returns the secret unchanged.
func (PlaintextScheme) Encode(plain string) (string, error) {
	return plain, nil
}

// Verify compares in constant time.
func (PlaintextScheme) Verify(stored, candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}

// BcryptScheme stores bcrypt hashes.
type BcryptScheme struct {
	Cost int
}

// Encode hashes the secret with bcrypt.
func (s BcryptScheme) Encode(plain string) (string, error) {
	cost := s.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify checks the candidate against the stored hash.
func (s BcryptScheme) Verify(stored, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)) == nil
}

// SchemeFromName resolves a configured scheme name.
func SchemeFromName(name string) (CredentialScheme, error) {
	switch name {
	case "", "plaintext":
		return PlaintextScheme{}, nil
	case "bcrypt":
		return BcryptScheme{}, nil
	}
	return nil, fmt.Errorf("auth: unknown credential scheme %q", name)
}
