package ports

import (
	"context"

	"github.com/dwirez99/majunkita/internal/core/domain"
)

// ProfileUpdate carries a partial profile change. Nil fields are left
// untouched by the store.
type ProfileUpdate struct {
	Username *string
	Name     *string
	Email    *string
	Phone    *string
	Role     *string
	Address  *string
}

// IsEmpty reports whether the update would touch no columns.
func (u ProfileUpdate) IsEmpty() bool {
	return u.Username == nil && u.Name == nil && u.Email == nil &&
		u.Phone == nil && u.Role == nil && u.Address == nil
}

// ProfileRepository defines persistence operations for the profiles mirror.
// Lookups by a missing id return domain.ErrProfileNotFound.
type ProfileRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Profile, error)
	FindRole(ctx context.Context, id string) (string, error)
	Insert(ctx context.Context, p *domain.Profile) error
	Update(ctx context.Context, id string, change ProfileUpdate) error
}
