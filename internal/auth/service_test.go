package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/veiculos-api/veiculos-api/internal/shared"
)

type memoryAuthRepo struct {
	admins []Administrator
	nextID int64
}

func (r *memoryAuthRepo) ListByEmail(ctx context.Context, email string) ([]Administrator, error) {
	var out []Administrator
	for _, adm := range r.admins {
		if adm.Email == email {
			out = append(out, adm)
		}
	}
	return out, nil
}

func (r *memoryAuthRepo) SeedAdministrator(ctx context.Context, adm Administrator) (bool, error) {
	if len(r.admins) > 0 {
		return false, nil
	}
	r.nextID++
	adm.ID = r.nextID
	r.admins = append(r.admins, adm)
	return true, nil
}

func TestAuthenticate(t *testing.T) {
	repo := &memoryAuthRepo{admins: []Administrator{
		{ID: 1, Email: "adm@teste.com", Password: "123456", Role: RoleAdm},
	}}
	service := NewService(repo, PlaintextScheme{}, nil)

	adm, err := service.Authenticate(context.Background(), "adm@teste.com", "123456")
	require.NoError(t, err)
	require.Equal(t, RoleAdm, adm.Role)
	require.Equal(t, int64(1), adm.ID)
}

func TestAuthenticateFailureIsUndifferentiated(t *testing.T) {
	repo := &memoryAuthRepo{admins: []Administrator{
		{ID: 1, Email: "adm@teste.com", Password: "123456", Role: RoleAdm},
	}}
	service := NewService(repo, PlaintextScheme{}, nil)

	// Unknown email and wrong password fail with the exact same error.
	_, unknownErr := service.Authenticate(context.Background(), "nobody@teste.com", "123456")
	_, wrongErr := service.Authenticate(context.Background(), "adm@teste.com", "654321")
	require.ErrorIs(t, unknownErr, shared.ErrInvalidCredentials)
	require.ErrorIs(t, wrongErr, shared.ErrInvalidCredentials)
	require.Equal(t, unknownErr, wrongErr)

	_, err := service.Authenticate(context.Background(), "", "123456")
	require.ErrorIs(t, err, shared.ErrInvalidCredentials)
	_, err = service.Authenticate(context.Background(), "adm@teste.com", "")
	require.ErrorIs(t, err, shared.ErrInvalidCredentials)
}

func TestAuthenticateFirstMatchWins(t *testing.T) {
	// Email uniqueness is not enforced; the lowest id matching both fields
	// wins.
	repo := &memoryAuthRepo{admins: []Administrator{
		{ID: 1, Email: "dup@teste.com", Password: "other", Role: RoleAdm},
		{ID: 2, Email: "dup@teste.com", Password: "secret", Role: RoleEditor},
		{ID: 3, Email: "dup@teste.com", Password: "secret", Role: RoleAdm},
	}}
	service := NewService(repo, PlaintextScheme{}, nil)

	adm, err := service.Authenticate(context.Background(), "dup@teste.com", "secret")
	require.NoError(t, err)
	require.Equal(t, int64(2), adm.ID)
	require.Equal(t, RoleEditor, adm.Role)
}

func TestAuthenticateBcryptScheme(t *testing.T) {
	scheme := BcryptScheme{Cost: 4}
	hashed, err := scheme.Encode("123456")
	require.NoError(t, err)

	repo := &memoryAuthRepo{admins: []Administrator{
		{ID: 1, Email: "adm@teste.com", Password: hashed, Role: RoleAdm},
	}}
	service := NewService(repo, scheme, nil)

	adm, err := service.Authenticate(context.Background(), "adm@teste.com", "123456")
	require.NoError(t, err)
	require.Equal(t, RoleAdm, adm.Role)

	_, err = service.Authenticate(context.Background(), "adm@teste.com", "wrong")
	require.ErrorIs(t, err, shared.ErrInvalidCredentials)
}

func TestEnsureDefaultAdministrator(t *testing.T) {
	repo := &memoryAuthRepo{}
	service := NewService(repo, PlaintextScheme{}, nil)

	require.NoError(t, service.EnsureDefaultAdministrator(context.Background()))
	require.Len(t, repo.admins, 1)
	require.Equal(t, SeedEmail, repo.admins[0].Email)
	require.Equal(t, SeedRole, repo.admins[0].Role)

	// Seeding is a no-op once any record exists.
	require.NoError(t, service.EnsureDefaultAdministrator(context.Background()))
	require.Len(t, repo.admins, 1)

	adm, err := service.Authenticate(context.Background(), SeedEmail, SeedPassword)
	require.NoError(t, err)
	require.Equal(t, RoleAdm, adm.Role)
}

func TestEnsureDefaultAdministratorSkipsNonEmptyStore(t *testing.T) {
	repo := &memoryAuthRepo{admins: []Administrator{
		{ID: 1, Email: "other@teste.com", Password: "x", Role: RoleEditor},
	}}
	service := NewService(repo, PlaintextScheme{}, nil)

	// Any existing record suppresses the seed, even a non-Adm one.
	require.NoError(t, service.EnsureDefaultAdministrator(context.Background()))
	require.Len(t, repo.admins, 1)
	require.Equal(t, "other@teste.com", repo.admins[0].Email)
}
