package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dwirez99/majunkita/internal/core/domain"
	"github.com/dwirez99/majunkita/internal/core/ports"
)

// UserAdminService implements the three administrative user operations:
// create, update, delete. Each call authorizes the caller against the
// profiles mirror, invokes the identity provider's admin API, and keeps the
// profile row in sync on a best-effort basis.
type UserAdminService struct {
	provider ports.IdentityProvider
	profiles ports.ProfileRepository
	logger   zerolog.Logger
}

func NewUserAdminService(provider ports.IdentityProvider, profiles ports.ProfileRepository, logger zerolog.Logger) *UserAdminService {
	return &UserAdminService{provider: provider, profiles: profiles, logger: logger}
}

// authorize resolves the caller's role and runs the policy gate. targetRole
// is the (normalized) role being assigned, or empty when none is.
func (s *UserAdminService) authorize(ctx context.Context, callerID string, targetRole string) (string, error) {
	callerRole, err := s.profiles.FindRole(ctx, callerID)
	if err != nil {
		return "", err
	}
	if !domain.CanManageUsers(callerRole) {
		return "", domain.ErrForbidden
	}
	if targetRole != "" && !domain.CanAssignRole(callerRole, targetRole) {
		return "", domain.ErrRoleNotAllowed
	}
	return domain.NormalizeRole(callerRole), nil
}

// CreateUser provisions a new account with the identity provider, with email
// pre-confirmed and the profile fields embedded as account metadata. The
// profiles row is expected to appear via the store trigger; when the
// follow-up read does not observe it, a manual insert compensates. Failure
// of that insert is logged and does not fail the operation.
func (s *UserAdminService) CreateUser(ctx context.Context, in ports.CreateUserInput) (*ports.CreateUserResult, error) {
	role := domain.NormalizeRole(in.Role)

	if _, err := s.authorize(ctx, in.CallerID, role); err != nil {
		return nil, err
	}

	if in.Email == "" || in.Password == "" || in.Name == "" || role == "" {
		return nil, fmt.Errorf("%w: missing required fields: email, password, name, role", domain.ErrValidation)
	}
	if !domain.IsValidRole(role) {
		return nil, fmt.Errorf("%w: invalid role, must be one of: %s", domain.ErrValidation, strings.Join(domain.ValidRoles(), ", "))
	}

	// Username defaults to the email local part inside the account metadata
	// only; a manual profile insert keeps whatever the request carried.
	username := in.Username
	if username == "" {
		if at := strings.Index(in.Email, "@"); at > 0 {
			username = in.Email[:at]
		}
	}

	account, err := s.provider.CreateAccount(ctx, ports.CreateAccountInput{
		Email:          in.Email,
		Password:       in.Password,
		EmailConfirmed: true,
		Metadata: map[string]any{
			"username": username,
			"name":     in.Name,
			"role":     role,
			"no_telp":  nullable(in.Phone),
			"address":  nullable(in.Address),
		},
	})
	if err != nil {
		s.logger.Error().Err(err).Str("email", in.Email).Msg("account creation failed")
		return nil, err
	}

	if _, err := s.profiles.FindByID(ctx, account.ID); err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			s.logger.Warn().Str("user_id", account.ID).Msg("profile not created by trigger, inserting manually")
		} else {
			s.logger.Error().Err(err).Str("user_id", account.ID).Msg("profile readback failed, inserting manually")
		}
		profile := &domain.Profile{
			ID:       account.ID,
			Role:     role,
			Phone:    in.Phone,
			Username: in.Username,
			Name:     in.Name,
			Email:    in.Email,
			Address:  in.Address,
		}
		if err := s.profiles.Insert(ctx, profile); err != nil {
			// The account exists and is usable; the mirror catches up later.
			s.logger.Error().Err(err).Str("user_id", account.ID).Msg("manual profile insert failed")
		}
	}

	s.logger.Info().Str("user_id", account.ID).Str("role", role).Msg("user created")

	return &ports.CreateUserResult{ID: account.ID, Email: account.Email, Role: role}, nil
}

// UpdateUser applies a partial change to an account and its profile mirror.
// A credential change (email/password) runs first and hard-fails the
// operation. The account-metadata update is best-effort. The profile-table
// update runs only when at least one recognized field is present and its
// failure fails the operation.
func (s *UserAdminService) UpdateUser(ctx context.Context, in ports.UpdateUserInput) error {
	targetRole := ""
	if in.Role != nil {
		targetRole = domain.NormalizeRole(*in.Role)
		in.Role = &targetRole
	}

	if _, err := s.authorize(ctx, in.CallerID, targetRole); err != nil {
		return err
	}

	if in.UserID == "" {
		return fmt.Errorf("%w: missing required field: user_id", domain.ErrValidation)
	}
	if in.Role != nil && !domain.IsValidRole(targetRole) {
		return fmt.Errorf("%w: invalid role, must be one of: %s", domain.ErrValidation, strings.Join(domain.ValidRoles(), ", "))
	}

	if in.Email != nil || in.Password != nil {
		if err := s.provider.UpdateCredentials(ctx, in.UserID, deref(in.Email), deref(in.Password)); err != nil {
			s.logger.Error().Err(err).Str("user_id", in.UserID).Msg("credential update failed")
			return err
		}
	}

	metadata := map[string]any{}
	if in.Username != nil {
		metadata["username"] = *in.Username
	}
	if in.Name != nil {
		metadata["name"] = *in.Name
	}
	if in.Phone != nil {
		metadata["no_telp"] = *in.Phone
	}
	if in.Role != nil {
		metadata["role"] = targetRole
	}
	if in.Address != nil {
		metadata["address"] = *in.Address
	}
	if len(metadata) > 0 {
		if err := s.provider.UpdateMetadata(ctx, in.UserID, metadata); err != nil {
			// Soft failure: the profile table remains the authoritative
			// mirror for these fields.
			s.logger.Warn().Err(err).Str("user_id", in.UserID).Msg("account metadata update failed")
		}
	}

	change := ports.ProfileUpdate{
		Username: in.Username,
		Name:     in.Name,
		Email:    in.Email,
		Phone:    in.Phone,
		Role:     in.Role,
		Address:  in.Address,
	}
	if !change.IsEmpty() {
		if err := s.profiles.Update(ctx, in.UserID, change); err != nil {
			s.logger.Error().Err(err).Str("user_id", in.UserID).Msg("profile update failed")
			return err
		}
	}

	s.logger.Info().Str("user_id", in.UserID).Msg("user updated")
	return nil
}

// DeleteUser removes an account via the identity provider. The profiles row
// is removed by the store's FK cascade, not by this service.
func (s *UserAdminService) DeleteUser(ctx context.Context, in ports.DeleteUserInput) error {
	if _, err := s.authorize(ctx, in.CallerID, ""); err != nil {
		return err
	}

	if in.UserID == "" {
		return fmt.Errorf("%w: missing required field: user_id", domain.ErrValidation)
	}
	if in.UserID == in.CallerID {
		return domain.ErrSelfDelete
	}

	if err := s.provider.DeleteAccount(ctx, in.UserID); err != nil {
		s.logger.Error().Err(err).Str("user_id", in.UserID).Msg("account deletion failed")
		return err
	}

	s.logger.Info().Str("user_id", in.UserID).Msg("user deleted")
	return nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
