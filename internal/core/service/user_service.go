package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bloglist/bloglist-api/internal/core/domain"
	"github.com/bloglist/bloglist-api/internal/core/ports"
)

const (
	usernameMinLength = 3
	passwordMinLength = 3
)

// UserService implements registration, login and the user read paths.
type UserService struct {
	users  ports.UserRepository
	blogs  ports.BlogRepository
	tokens ports.TokenService
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, blogs ports.BlogRepository, tokens ports.TokenService, logger zerolog.Logger) *UserService {
	return &UserService{users: users, blogs: blogs, tokens: tokens, logger: logger}
}

// Register validates credentials, hashes the password and persists the new
// account with an empty posts sequence.
func (s *UserService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if err := validateRegistration(input); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     input.Username,
		Name:         input.Name,
		PasswordHash: string(hash),
		Posts:        []string{},
	}

	created, err := s.users.Insert(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Str("user_id", created.ID).Msg("user registered")
	return created, nil
}

// validateRegistration runs the explicit per-entity checks before any write.
// Uniqueness is left to the store's unique index.
func validateRegistration(input ports.RegisterInput) error {
	if input.Username == "" {
		return domain.NewValidationError("username is required")
	}
	if len(input.Username) < usernameMinLength {
		return domain.NewValidationError("username `%s` is shorter than the minimum allowed length (%d)", input.Username, usernameMinLength)
	}
	if input.Password == "" {
		return domain.NewValidationError("password is required")
	}
	if len(input.Password) < passwordMinLength {
		return domain.NewValidationError("password `%s` is shorter than the minimum allowed length (%d)", input.Password, passwordMinLength)
	}
	return nil
}

// Login verifies the credentials and issues a bearer token for the user.
// Unknown usernames and wrong passwords are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Username, user.ID)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("username", user.Username).Msg("user logged in")
	return token, user, nil
}

// List returns all users with their posts summaries attached.
func (s *UserService) List(ctx context.Context) ([]ports.UserDetail, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0)
	for _, u := range users {
		ids = append(ids, u.Posts...)
	}
	byID, err := s.blogsByID(ctx, ids)
	if err != nil {
		return nil, err
	}

	details := make([]ports.UserDetail, 0, len(users))
	for _, u := range users {
		details = append(details, toUserDetail(u, byID))
	}
	return details, nil
}

// Get returns a single user with posts summaries attached.
func (s *UserService) Get(ctx context.Context, id string) (*ports.UserDetail, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	byID, err := s.blogsByID(ctx, user.Posts)
	if err != nil {
		return nil, err
	}

	detail := toUserDetail(user, byID)
	return &detail, nil
}

func (s *UserService) blogsByID(ctx context.Context, ids []string) (map[string]*domain.Blog, error) {
	byID := make(map[string]*domain.Blog, len(ids))
	if len(ids) == 0 {
		return byID, nil
	}
	blogs, err := s.blogs.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, b := range blogs {
		byID[b.ID] = b
	}
	return byID, nil
}

func toUserDetail(u *domain.User, blogs map[string]*domain.Blog) ports.UserDetail {
	posts := make([]ports.PostSummary, 0, len(u.Posts))
	for _, id := range u.Posts {
		b, ok := blogs[id]
		if !ok {
			continue
		}
		posts = append(posts, ports.PostSummary{
			ID:     b.ID,
			Title:  b.Title,
			Author: b.Author,
			URL:    b.URL,
		})
	}
	return ports.UserDetail{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Posts:    posts,
	}
}
