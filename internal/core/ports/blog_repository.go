package ports

import (
	"context"

	"github.com/bloglist/bloglist-api/internal/core/domain"
)

// BlogRepository defines persistence operations for blogs.
type BlogRepository interface {
	// Insert persists a new blog and returns it with the assigned id.
	Insert(ctx context.Context, blog *domain.Blog) (*domain.Blog, error)
	FindByID(ctx context.Context, id string) (*domain.Blog, error)
	// FindByIDs returns the blogs matching the given ids. Ids that do not
	// resolve are silently skipped (dangling references are not an error
	// on read paths).
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Blog, error)
	FindAll(ctx context.Context) ([]*domain.Blog, error)
	// Replace overwrites the mutable fields (title, author, url, likes) of
	// the identified blog and returns the updated document.
	Replace(ctx context.Context, blog *domain.Blog) (*domain.Blog, error)
	Delete(ctx context.Context, id string) error
}
