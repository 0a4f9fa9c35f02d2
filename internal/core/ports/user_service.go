package ports

import "context"

// CreateUserInput carries all data needed to create a new user. CallerID is
// the authenticated identity invoking the operation.
type CreateUserInput struct {
	CallerID string
	Email    string
	Password string
	Username string
	Name     string
	Role     string
	Phone    string
	Address  string
}

// CreateUserResult echoes the fields of the freshly created account.
type CreateUserResult struct {
	ID    string
	Email string
	Role  string
}

// UpdateUserInput carries a partial user change. Pointer fields distinguish
// "absent" from "set to empty"; only non-nil fields are applied.
type UpdateUserInput struct {
	CallerID string
	UserID   string
	Email    *string
	Password *string
	Username *string
	Name     *string
	Phone    *string
	Role     *string
	Address  *string
}

// DeleteUserInput identifies the account to remove.
type DeleteUserInput struct {
	CallerID string
	UserID   string
}

// UserAdminService defines the administrative user operations. Every
// operation authorizes the caller (role lookup + policy gate) before acting.
type UserAdminService interface {
	CreateUser(ctx context.Context, input CreateUserInput) (*CreateUserResult, error)
	UpdateUser(ctx context.Context, input UpdateUserInput) error
	DeleteUser(ctx context.Context, input DeleteUserInput) error
}
