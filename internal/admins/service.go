package admins

import (
	"context"
	"fmt"

	"github.com/veiculos-api/veiculos-api/internal/auth"
	"github.com/veiculos-api/veiculos-api/internal/shared"
)

// RepositoryPort defines data access methods for administrators.
type RepositoryPort interface {
	Create(ctx context.Context, email, password string, role auth.Role) (Administrator, error)
	Get(ctx context.Context, id int64) (Administrator, error)
	List(ctx context.Context, limit, offset int) ([]Administrator, error)
}

// Service handles administrator management logic.
type Service struct {
	repo   RepositoryPort
	scheme auth.CredentialScheme
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort, scheme auth.CredentialScheme) *Service {
	if scheme == nil {
		scheme = auth.PlaintextScheme{}
	}
	return &Service{repo: repo, scheme: scheme}
}

// Create inserts a new administrator. Field presence is enforced at the
// HTTP layer; the service owns role canonicalization, matching the name
// case-insensitively and storing it in canonical case. Nothing is written
// when the role is unknown.
func (s *Service) Create(ctx context.Context, in CreateAdministratorInput) (Administrator, error) {
	role, err := auth.ParseRole(in.Role)
	if err != nil {
		return Administrator{}, shared.ErrInvalidInput
	}
	secret, err := s.scheme.Encode(in.Password)
	if err != nil {
		return Administrator{}, fmt.Errorf("admins: encode credential: %w", err)
	}
	return s.repo.Create(ctx, in.Email, secret, role)
}

// Get fetches an administrator by id.
func (s *Service) Get(ctx context.Context, id int64) (Administrator, error) {
	return s.repo.Get(ctx, id)
}

// List returns one fixed-size page of administrators.
func (s *Service) List(ctx context.Context, page int) ([]Administrator, error) {
	return s.repo.List(ctx, shared.PageSize, shared.Offset(page))
}
