package auth

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/veiculos-api/veiculos-api/internal/shared"
)

// Role is the closed set of administrator roles.
type Role string

const (
	// RoleAdm grants access to administrator management and vehicle deletion.
	RoleAdm Role = "Adm"
	// RoleEditor grants the same access as any authenticated identity.
	RoleEditor Role = "Editor"
)

var roleCaser = cases.Title(language.Und)

// ParseRole resolves a role name case-insensitively into its canonical form.
func ParseRole(raw string) (Role, error) {
	switch Role(roleCaser.String(strings.ToLower(strings.TrimSpace(raw)))) {
	case RoleAdm:
		return RoleAdm, nil
	case RoleEditor:
		return RoleEditor, nil
	}
	return "", shared.ErrInvalidInput
}

// Administrator is the credentialed identity record used for login.
type Administrator struct {
	ID       int64
	Email    string
	Password string
	Role     Role
}

// Claims are the identity assertions embedded in a bearer token. They are
// fixed at issuance; role changes on the stored Administrator do not
// propagate to tokens already in flight.
type Claims struct {
	Email     string
	Role      Role
	TokenID   string
	ExpiresAt time.Time
}
