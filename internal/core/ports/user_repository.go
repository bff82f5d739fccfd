package ports

import (
	"context"

	"github.com/soundvault/catalog-api/internal/core/domain"
)

// UserRepository defines the persistence contract for identities.
type UserRepository interface {
	// FindByUsername is a point lookup by table key.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// FindAll scans the whole table.
	FindAll(ctx context.Context) ([]domain.User, error)
	// Create inserts a new identity, returning domain.ErrUserExists on a
	// duplicate username.
	Create(ctx context.Context, user *domain.User) error
	// Save upserts the record under its username key, replacing any previous
	// version wholesale.
	Save(ctx context.Context, user *domain.User) error
	// Delete removes the record, returning domain.ErrUserNotFound when absent.
	Delete(ctx context.Context, username string) error
}
