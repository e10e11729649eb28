package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/bloglist/bloglist-api/internal/core/domain"
	"github.com/bloglist/bloglist-api/internal/core/ports"
)

// BlogService coordinates the blog lifecycle together with the inverse
// reference on the owning user.
type BlogService struct {
	blogs  ports.BlogRepository
	users  ports.UserRepository
	tx     ports.TxManager
	logger zerolog.Logger
}

func NewBlogService(blogs ports.BlogRepository, users ports.UserRepository, tx ports.TxManager, logger zerolog.Logger) *BlogService {
	return &BlogService{blogs: blogs, users: users, tx: tx, logger: logger}
}

// Create persists a new blog owned by the subject and appends its id to the
// subject's posts sequence. Both writes run in one transaction.
func (s *BlogService) Create(ctx context.Context, subjectID string, input ports.CreateBlogInput) (*domain.Blog, error) {
	blog := &domain.Blog{
		Title:  input.Title,
		Author: input.Author,
		URL:    input.URL,
		Likes:  input.Likes,
		UserID: subjectID,
	}
	if err := blog.Validate(); err != nil {
		return nil, err
	}

	var saved *domain.Blog
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		owner, err := s.users.FindByID(ctx, subjectID)
		if err != nil {
			return err
		}

		saved, err = s.blogs.Insert(ctx, blog)
		if err != nil {
			return err
		}

		return s.users.AddPost(ctx, owner.ID, saved.ID)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("blog_id", saved.ID).Str("user_id", subjectID).Msg("blog created")
	return saved, nil
}

// Delete removes a blog and filters its id out of the owner's posts sequence.
// The not-found check runs before the ownership comparison; only the owner may
// delete.
func (s *BlogService) Delete(ctx context.Context, subjectID, blogID string) error {
	blog, err := s.blogs.FindByID(ctx, blogID)
	if err != nil {
		return err
	}

	if !blog.OwnedBy(subjectID) {
		return domain.ErrNotOwner
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.blogs.Delete(ctx, blogID); err != nil {
			return err
		}
		return s.users.RemovePost(ctx, blog.UserID, blogID)
	})
	if err != nil {
		return err
	}

	s.logger.Info().Str("blog_id", blogID).Str("user_id", subjectID).Msg("blog deleted")
	return nil
}

// Update replaces the four mutable fields and re-runs validation. An empty
// subjectID means the edit is public (open-edit policy); otherwise the
// subject must own the blog.
func (s *BlogService) Update(ctx context.Context, subjectID, blogID string, input ports.UpdateBlogInput) (*domain.Blog, error) {
	current, err := s.blogs.FindByID(ctx, blogID)
	if err != nil {
		return nil, err
	}

	if subjectID != "" && !current.OwnedBy(subjectID) {
		return nil, domain.ErrEditForbidden
	}

	updated := &domain.Blog{
		ID:     current.ID,
		Title:  input.Title,
		Author: input.Author,
		URL:    input.URL,
		Likes:  input.Likes,
		UserID: current.UserID,
	}
	if err := updated.Validate(); err != nil {
		return nil, err
	}

	return s.blogs.Replace(ctx, updated)
}

// List returns all blogs with their owner summaries attached.
func (s *BlogService) List(ctx context.Context) ([]ports.BlogDetail, error) {
	blogs, err := s.blogs.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	owners := make(map[string]*domain.User)
	details := make([]ports.BlogDetail, 0, len(blogs))
	for _, b := range blogs {
		owner, err := s.resolveOwner(ctx, b.UserID, owners)
		if err != nil {
			return nil, err
		}
		details = append(details, toBlogDetail(b, owner))
	}
	return details, nil
}

// Get returns a single blog with its owner summary attached.
func (s *BlogService) Get(ctx context.Context, blogID string) (*ports.BlogDetail, error) {
	blog, err := s.blogs.FindByID(ctx, blogID)
	if err != nil {
		return nil, err
	}

	owner, err := s.resolveOwner(ctx, blog.UserID, make(map[string]*domain.User))
	if err != nil {
		return nil, err
	}

	detail := toBlogDetail(blog, owner)
	return &detail, nil
}

// Stats aggregates the whole collection: total likes, the most-liked post and
// the most prolific / most-liked authors.
func (s *BlogService) Stats(ctx context.Context) (*ports.BlogStats, error) {
	blogs, err := s.blogs.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return computeStats(blogs), nil
}

// resolveOwner looks up an owner, memoizing per call. A dangling reference
// yields a nil summary rather than an error on read paths.
func (s *BlogService) resolveOwner(ctx context.Context, userID string, cache map[string]*domain.User) (*domain.User, error) {
	if userID == "" {
		return nil, nil
	}
	if owner, ok := cache[userID]; ok {
		return owner, nil
	}

	owner, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			cache[userID] = nil
			return nil, nil
		}
		return nil, err
	}
	cache[userID] = owner
	return owner, nil
}

func toBlogDetail(b *domain.Blog, owner *domain.User) ports.BlogDetail {
	detail := ports.BlogDetail{
		ID:     b.ID,
		Title:  b.Title,
		Author: b.Author,
		URL:    b.URL,
		Likes:  b.Likes,
	}
	if owner != nil {
		detail.User = &ports.OwnerSummary{
			ID:       owner.ID,
			Username: owner.Username,
			Name:     owner.Name,
		}
	}
	return detail
}
