package domain

import (
	"errors"
	"fmt"
	"time"
)

// Roles a profile may carry. Only admin and manager may administer users;
// the other three are the operational roles of the garment workflow.
const (
	RoleAdmin          = "admin"
	RoleManager        = "manager"
	RoleDriver         = "driver"
	RolePartnerFactory = "partner_factory"
	RoleTailor         = "tailor"
)

// ValidRoles lists every assignable role in presentation order.
func ValidRoles() []string {
	return []string{RoleAdmin, RoleManager, RoleDriver, RolePartnerFactory, RoleTailor}
}

// IsValidRole reports whether role (already normalized) is one of the
// enumerated roles.
func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleDriver, RolePartnerFactory, RoleTailor:
		return true
	}
	return false
}

// Profile is the denormalized mirror of an identity-provider account, keyed
// by the account id. Role lookups run against this record. The store owns
// username uniqueness and the FK cascade that removes the row when the
// account is deleted.
type Profile struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Phone     string    `json:"no_telp,omitempty"`
	Username  string    `json:"username,omitempty"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

var ErrUnauthorized = errors.New("invalid or missing credentials")
var ErrProfileNotFound = errors.New("caller profile not found")
var ErrForbidden = errors.New("only admins and managers can manage users")
var ErrRoleNotAllowed = errors.New("managers cannot assign admin or manager roles")
var ErrSelfDelete = errors.New("cannot delete your own account")
var ErrValidation = errors.New("invalid request")

// ProviderError wraps a failure reported by the identity provider's
// administrative API. Status and Message are forwarded to the caller.
type ProviderError struct {
	Op      string
	Status  int
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: provider returned %d: %s", e.Op, e.Status, e.Message)
}
