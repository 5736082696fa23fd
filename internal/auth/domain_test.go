package auth

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/veiculos-api/veiculos-api/internal/shared"
)

func TestParseRole(t *testing.T) {
	cases := []struct {
		in   string
		want Role
	}{
		{"Adm", RoleAdm},
		{"adm", RoleAdm},
		{"ADM", RoleAdm},
		{"Editor", RoleEditor},
		{"editor", RoleEditor},
		{"EDITOR", RoleEditor},
		{" adm ", RoleAdm},
	}
	for _, tc := range cases {
		role, err := ParseRole(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		require.Equal(t, tc.want, role, "input %q", tc.in)
	}
}

func TestParseRoleRejectsUnknown(t *testing.T) {
	for _, in := range []string{"", "root", "admin", "Viewer"} {
		_, err := ParseRole(in)
		require.ErrorIs(t, err, shared.ErrInvalidInput, "input %q", in)
	}
}
