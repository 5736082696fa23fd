package auth

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/veiculos-api/veiculos-api/internal/platform/db"
)

// PGRepository implements Repository using PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// ListByEmail fetches every administrator with the given email, lowest id first.
func (r *PGRepository) ListByEmail(ctx context.Context, email string) ([]Administrator, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, email, password, role FROM administrators WHERE email = $1 ORDER BY id`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var admins []Administrator
	for rows.Next() {
		var adm Administrator
		var role string
		if err := rows.Scan(&adm.ID, &adm.Email, &adm.Password, &role); err != nil {
			return nil, err
		}
		adm.Role = Role(role)
		admins = append(admins, adm)
	}
	return admins, rows.Err()
}

// SeedAdministrator inserts the record only when the table holds no rows.
// The emptiness check and the insert run in one transaction under a table
// lock, so two processes starting at once cannot both seed.
func (r *PGRepository) SeedAdministrator(ctx context.Context, adm Administrator) (bool, error) {
	var seeded bool
	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `LOCK TABLE administrators IN SHARE ROW EXCLUSIVE MODE`); err != nil {
			return err
		}
		var count int64
		if err := tx.QueryRow(ctx, `SELECT count(*) FROM administrators`).Scan(&count); err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO administrators (email, password, role) VALUES ($1, $2, $3)`,
			adm.Email, adm.Password, string(adm.Role)); err != nil {
			return err
		}
		seeded = true
		return nil
	})
	return seeded, err
}

var _ Repository = (*PGRepository)(nil)
