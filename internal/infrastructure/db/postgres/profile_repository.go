package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dwirez99/majunkita/internal/core/domain"
	"github.com/dwirez99/majunkita/internal/core/ports"
)

// PostgresProfileRepository persists the profiles mirror. The table is owned
// by the identity platform's provisioning trigger; rows here are read for
// authorization and written only as the compensating path.
type PostgresProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *PostgresProfileRepository {
	return &PostgresProfileRepository{pool: pool}
}

func (r *PostgresProfileRepository) FindRole(ctx context.Context, id string) (string, error) {
	var role string
	err := r.pool.QueryRow(ctx,
		`SELECT role FROM profiles WHERE id = $1`, id,
	).Scan(&role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrProfileNotFound
		}
		return "", fmt.Errorf("find role: %w", err)
	}
	return role, nil
}

func (r *PostgresProfileRepository) FindByID(ctx context.Context, id string) (*domain.Profile, error) {
	var (
		p                                     domain.Profile
		phone, username, name, email, address *string
		updatedAt                             *time.Time
	)
	err := r.pool.QueryRow(ctx,
		`SELECT id, role, no_telp, username, name, email, address, updated_at
         FROM profiles
         WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.Role, &phone, &username, &name, &email, &address, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}

	p.Phone = valueOr(phone)
	p.Username = valueOr(username)
	p.Name = valueOr(name)
	p.Email = valueOr(email)
	p.Address = valueOr(address)
	if updatedAt != nil {
		p.UpdatedAt = *updatedAt
	}
	return &p, nil
}

func (r *PostgresProfileRepository) Insert(ctx context.Context, p *domain.Profile) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO profiles (id, role, no_telp, username, name, email, address)
         VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.Role,
		nullIfEmpty(p.Phone), nullIfEmpty(p.Username), nullIfEmpty(p.Name),
		nullIfEmpty(p.Email), nullIfEmpty(p.Address),
	)
	if err != nil {
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

// Update applies only the non-nil fields of change. A no-op change returns
// immediately without touching the store.
func (r *PostgresProfileRepository) Update(ctx context.Context, id string, change ports.ProfileUpdate) error {
	var (
		sets []string
		args []any
	)
	set := func(column string, v *string) {
		if v != nil {
			args = append(args, *v)
			sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
		}
	}
	set("username", change.Username)
	set("name", change.Name)
	set("email", change.Email)
	set("no_telp", change.Phone)
	set("role", change.Role)
	set("address", change.Address)

	if len(sets) == 0 {
		return nil
	}
	sets = append(sets, "updated_at = now()")

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE profiles SET %s WHERE id = $%d`,
		strings.Join(sets, ", "), len(args))

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func valueOr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
