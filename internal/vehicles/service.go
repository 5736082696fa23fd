package vehicles

import (
	"context"
	"log/slog"

	"github.com/veiculos-api/veiculos-api/internal/shared"
)

// RepositoryPort defines data access methods for vehicles.
type RepositoryPort interface {
	Create(ctx context.Context, in VehicleInput) (Vehicle, error)
	Get(ctx context.Context, id int64) (Vehicle, error)
	List(ctx context.Context, limit, offset int) ([]Vehicle, error)
	Update(ctx context.Context, id int64, in VehicleInput) (Vehicle, error)
	Delete(ctx context.Context, id int64) error
}

// Service handles vehicle business logic. Reads go through the cache when
// one is configured; every write bumps the cache version.
type Service struct {
	repo   RepositoryPort
	cache  *Cache
	logger *slog.Logger
}

// NewService builds a Service instance. The cache may be nil.
func NewService(repo RepositoryPort, cache *Cache, logger *slog.Logger) *Service {
	return &Service{repo: repo, cache: cache, logger: logger}
}

// Create validates and inserts a vehicle. Nothing is written when
// validation fails.
func (s *Service) Create(ctx context.Context, in VehicleInput) (Vehicle, error) {
	if !in.Validate() {
		return Vehicle{}, shared.ErrInvalidInput
	}
	v, err := s.repo.Create(ctx, in)
	if err != nil {
		return Vehicle{}, err
	}
	s.invalidate(ctx)
	return v, nil
}

// Get fetches a vehicle by id. Not-found results are never cached.
func (s *Service) Get(ctx context.Context, id int64) (Vehicle, error) {
	key, err := s.cache.BuildKey(ctx, keyGet(id)...)
	if err != nil {
		return Vehicle{}, err
	}
	var v Vehicle
	err = s.cache.FetchJSON(ctx, key, &v, func(ctx context.Context) (interface{}, error) {
		return s.repo.Get(ctx, id)
	})
	return v, err
}

// List returns one fixed-size page of vehicles.
func (s *Service) List(ctx context.Context, page int) ([]Vehicle, error) {
	key, err := s.cache.BuildKey(ctx, keyList(page)...)
	if err != nil {
		return nil, err
	}
	vehicles := []Vehicle{}
	err = s.cache.FetchJSON(ctx, key, &vehicles, func(ctx context.Context) (interface{}, error) {
		return s.repo.List(ctx, shared.PageSize, shared.Offset(page))
	})
	return vehicles, err
}

// Update replaces all fields of an existing vehicle. A missing id reports
// shared.ErrNotFound before the input is validated, and a validation
// failure leaves the stored record unmodified.
func (s *Service) Update(ctx context.Context, id int64, in VehicleInput) (Vehicle, error) {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return Vehicle{}, err
	}
	if !in.Validate() {
		return Vehicle{}, shared.ErrInvalidInput
	}
	v, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return Vehicle{}, err
	}
	s.invalidate(ctx)
	return v, nil
}

// Delete removes a vehicle permanently.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *Service) invalidate(ctx context.Context) {
	if err := s.cache.Bump(ctx); err != nil && s.logger != nil {
		s.logger.Warn("vehicle cache bump", slog.Any("error", err))
	}
}
