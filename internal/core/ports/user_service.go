package ports

import (
	"context"

	"github.com/soundvault/catalog-api/internal/core/domain"
)

// CreateUserInput carries the caller-supplied fields for a new identity.
// Age is never taken from the caller; a fixed default is stored.
type CreateUserInput struct {
	Username string
	Password string
	Role     string
}

type UserService interface {
	// Login verifies the credential and returns a signed session token.
	Login(ctx context.Context, username, password string) (string, error)
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	// ChangePassword re-verifies the current credential before writing the
	// replacement record.
	ChangePassword(ctx context.Context, username, current, next string) error
	Delete(ctx context.Context, username string) error
	List(ctx context.Context) ([]domain.User, error)
}
