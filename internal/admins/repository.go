package admins

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/veiculos-api/veiculos-api/internal/auth"
	"github.com/veiculos-api/veiculos-api/internal/shared"
)

// Repository provides PostgreSQL backed persistence for administrators.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create inserts an administrator and returns the stored view.
func (r *Repository) Create(ctx context.Context, email, password string, role auth.Role) (Administrator, error) {
	var adm Administrator
	var storedRole string
	err := r.pool.QueryRow(ctx,
		`INSERT INTO administrators (email, password, role) VALUES ($1, $2, $3) RETURNING id, email, role`,
		email, password, string(role)).Scan(&adm.ID, &adm.Email, &storedRole)
	if err != nil {
		return Administrator{}, err
	}
	adm.Role = auth.Role(storedRole)
	return adm, nil
}

// Get fetches an administrator by id.
func (r *Repository) Get(ctx context.Context, id int64) (Administrator, error) {
	var adm Administrator
	var role string
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, role FROM administrators WHERE id = $1`, id).
		Scan(&adm.ID, &adm.Email, &role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Administrator{}, shared.ErrNotFound
		}
		return Administrator{}, err
	}
	adm.Role = auth.Role(role)
	return adm, nil
}

// List returns a page of administrators ordered by id.
func (r *Repository) List(ctx context.Context, limit, offset int) ([]Administrator, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, email, role FROM administrators ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	admins := make([]Administrator, 0, limit)
	for rows.Next() {
		var adm Administrator
		var role string
		if err := rows.Scan(&adm.ID, &adm.Email, &role); err != nil {
			return nil, err
		}
		adm.Role = auth.Role(role)
		admins = append(admins, adm)
	}
	return admins, rows.Err()
}
