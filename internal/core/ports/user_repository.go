package ports

import (
	"context"

	"github.com/bloglist/bloglist-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Insert persists a new user. Returns domain.ErrUsernameTaken when the
	// unique username constraint is violated.
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	// AddPost appends a blog id to the user's posts sequence.
	AddPost(ctx context.Context, userID, blogID string) error
	// RemovePost filters a blog id out of the user's posts sequence.
	RemovePost(ctx context.Context, userID, blogID string) error
}
