package ports

import (
	"context"

	"github.com/bloglist/bloglist-api/internal/core/domain"
)

// CreateBlogInput carries the data needed to create a new blog post.
// Likes defaults to 0 when omitted.
type CreateBlogInput struct {
	Title  string
	Author string
	URL    string
	Likes  int
}

// UpdateBlogInput replaces the four mutable fields of an existing blog.
type UpdateBlogInput struct {
	Title  string
	Author string
	URL    string
	Likes  int
}

// OwnerSummary is the lightweight owner view attached to blog read paths.
type OwnerSummary struct {
	ID       string
	Username string
	Name     string
}

// BlogDetail is a blog with its owner summary populated.
type BlogDetail struct {
	ID     string
	Title  string
	Author string
	URL    string
	Likes  int
	User   *OwnerSummary
}

// FavoriteBlog identifies the single most-liked post.
type FavoriteBlog struct {
	Title  string
	Author string
	Likes  int
}

// AuthorBlogs counts posts per author.
type AuthorBlogs struct {
	Author string
	Blogs  int
}

// AuthorLikes sums likes per author.
type AuthorLikes struct {
	Author string
	Likes  int
}

// BlogStats aggregates the whole blog collection. The pointer fields are nil
// when the collection is empty.
type BlogStats struct {
	Blogs      int
	TotalLikes int
	Favorite   *FavoriteBlog
	MostBlogs  *AuthorBlogs
	MostLikes  *AuthorLikes
}

// BlogService defines use-case operations for blog posts. Mutations that take
// a subjectID act on behalf of the user identified by a verified token.
type BlogService interface {
	Create(ctx context.Context, subjectID string, input CreateBlogInput) (*domain.Blog, error)
	// Update replaces the mutable fields. When subjectID is empty the edit
	// is public (open-edit policy); when non-empty the subject must own the
	// blog.
	Update(ctx context.Context, subjectID, blogID string, input UpdateBlogInput) (*domain.Blog, error)
	Delete(ctx context.Context, subjectID, blogID string) error
	List(ctx context.Context) ([]BlogDetail, error)
	Get(ctx context.Context, blogID string) (*BlogDetail, error)
	Stats(ctx context.Context) (*BlogStats, error)
}
