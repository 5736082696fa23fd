package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/veiculos-api/veiculos-api/internal/shared"
)

// SeedEmail, SeedPassword and SeedRole describe the bootstrap administrator
// inserted when the store is empty at startup.
const (
	SeedEmail    = "adm@teste.com"
	SeedPassword = "123456"
	SeedRole     = RoleAdm
)

// Repository defines persistence operations for the auth module.
type Repository interface {
	// ListByEmail returns every administrator with the given email ordered
	// by ascending id. Email uniqueness is not enforced by the store.
	ListByEmail(ctx context.Context, email string) ([]Administrator, error)
	// SeedAdministrator inserts the record only when the store is empty,
	// atomically, and reports whether the insert happened.
	SeedAdministrator(ctx context.Context, adm Administrator) (bool, error)
}

// Service wraps authentication business rules.
type Service struct {
	repo   Repository
	scheme CredentialScheme
	logger *slog.Logger
}

// NewService constructs a new Service.
func NewService(repo Repository, scheme CredentialScheme, logger *slog.Logger) *Service {
	if scheme == nil {
		scheme = PlaintextScheme{}
	}
	return &Service{repo: repo, scheme: scheme, logger: logger}
}

// Authenticate validates email/password credentials. The first stored
// administrator matching both values wins. Unknown email and wrong password
// are indistinguishable to the caller.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*Administrator, error) {
	admins, err := s.repo.ListByEmail(ctx, email)
	if err != nil {
		return nil, shared.ErrInvalidCredentials
	}
	for i := range admins {
		if s.scheme.Verify(admins[i].Password, password) {
			return &admins[i], nil
		}
	}
	return nil, shared.ErrInvalidCredentials
}

// EnsureDefaultAdministrator seeds the bootstrap administrator when the
// store holds no records. Called once at startup; the repository makes the
// empty-check and the insert atomic, so concurrent starters seed at most
// one record between them.
func (s *Service) EnsureDefaultAdministrator(ctx context.Context) error {
	secret, err := s.scheme.Encode(SeedPassword)
	if err != nil {
		return fmt.Errorf("auth: encode seed credential: %w", err)
	}
	seeded, err := s.repo.SeedAdministrator(ctx, Administrator{
		Email:    SeedEmail,
		Password: secret,
		Role:     SeedRole,
	})
	if err != nil {
		return fmt.Errorf("auth: seed administrator: %w", err)
	}
	if seeded && s.logger != nil {
		s.logger.Info("seeded default administrator", slog.String("email", SeedEmail))
	}
	return nil
}
