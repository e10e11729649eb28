package ports

import (
	"context"

	"github.com/bloglist/bloglist-api/internal/core/domain"
)

// RegisterInput carries the data needed to create a new account.
type RegisterInput struct {
	Username string
	Name     string
	Password string
}

// PostSummary is the lightweight blog view attached to user read paths.
type PostSummary struct {
	ID     string
	Title  string
	Author string
	URL    string
}

// UserDetail is a user with its posts summaries populated. The password hash
// never leaves the service layer.
type UserDetail struct {
	ID       string
	Username string
	Name     string
	Posts    []PostSummary
}

// UserService defines use-case operations for accounts.
type UserService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login verifies credentials and returns a signed token plus the user.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	List(ctx context.Context) ([]UserDetail, error)
	Get(ctx context.Context, id string) (*UserDetail, error)
}
