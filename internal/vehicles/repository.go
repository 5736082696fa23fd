package vehicles

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/veiculos-api/veiculos-api/internal/shared"
)

type dbtx interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// Repository provides PostgreSQL backed persistence for vehicles.
type Repository struct {
	db dbtx
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{db: pool}
}

// Create inserts a vehicle and returns the stored record.
func (r *Repository) Create(ctx context.Context, in VehicleInput) (Vehicle, error) {
	var v Vehicle
	err := r.db.QueryRow(ctx,
		`INSERT INTO vehicles (name, brand, year) VALUES ($1, $2, $3) RETURNING id, name, brand, year`,
		in.Name, in.Brand, in.Year).Scan(&v.ID, &v.Name, &v.Brand, &v.Year)
	return v, err
}

// Get fetches a vehicle by id.
func (r *Repository) Get(ctx context.Context, id int64) (Vehicle, error) {
	var v Vehicle
	err := r.db.QueryRow(ctx,
		`SELECT id, name, brand, year FROM vehicles WHERE id = $1`, id).
		Scan(&v.ID, &v.Name, &v.Brand, &v.Year)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Vehicle{}, shared.ErrNotFound
		}
		return Vehicle{}, err
	}
	return v, nil
}

// List returns a page of vehicles ordered by id.
func (r *Repository) List(ctx context.Context, limit, offset int) ([]Vehicle, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, brand, year FROM vehicles ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vehicles := make([]Vehicle, 0, limit)
	for rows.Next() {
		var v Vehicle
		if err := rows.Scan(&v.ID, &v.Name, &v.Brand, &v.Year); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

// Update replaces all vehicle fields. Missing ids report shared.ErrNotFound.
func (r *Repository) Update(ctx context.Context, id int64, in VehicleInput) (Vehicle, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE vehicles SET name = $1, brand = $2, year = $3 WHERE id = $4`,
		in.Name, in.Brand, in.Year, id)
	if err != nil {
		return Vehicle{}, err
	}
	if tag.RowsAffected() == 0 {
		return Vehicle{}, shared.ErrNotFound
	}
	return Vehicle{ID: id, Name: in.Name, Brand: in.Brand, Year: in.Year}, nil
}

// Delete removes a vehicle permanently. Missing ids report shared.ErrNotFound.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}
