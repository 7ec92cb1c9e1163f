package auth

import (
	"context"

	"github.com/mmynk/restapis/internal/models"
)

// Authenticator defines the interface for authentication implementations.
// This abstraction allows swapping between different auth methods (password, passkeys, OAuth, etc.)
// without changing the service layer code.
type Authenticator interface {
	// Register creates a new user account with the given user name and credential.
	// Returns ErrUsernameInUse if the user name is taken.
	Register(ctx context.Context, userName, emailAddress, credential string) (*models.User, error)

	// Authenticate verifies the user's credentials and returns the user if successful.
	// Unknown users and wrong credentials both return ErrInvalidCredentials.
	Authenticate(ctx context.Context, userName, credential string) (*models.User, error)

	// ValidateCredential checks if the credential meets the implementation's requirements.
	ValidateCredential(credential string) error
}
