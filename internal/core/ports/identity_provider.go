package ports

import "context"

// CreateAccountInput carries everything needed to provision a new account.
// Metadata is embedded on the account record so the store-side trigger can
// populate the profiles mirror.
type CreateAccountInput struct {
	Email          string
	Password       string
	EmailConfirmed bool
	Metadata       map[string]any
}

// Account is the subset of the provider's account record the service
// consumes.
type Account struct {
	ID    string
	Email string
}

// IdentityProvider is the identity platform's administrative API. Failures
// surface as *domain.ProviderError with the provider's status and message.
type IdentityProvider interface {
	CreateAccount(ctx context.Context, input CreateAccountInput) (*Account, error)
	// UpdateCredentials changes the account's email and/or password. Empty
	// values are omitted from the request.
	UpdateCredentials(ctx context.Context, id, email, password string) error
	UpdateMetadata(ctx context.Context, id string, metadata map[string]any) error
	DeleteAccount(ctx context.Context, id string) error
}
