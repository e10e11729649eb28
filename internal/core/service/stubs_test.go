package service

import (
	"context"
	"fmt"

	"github.com/bloglist/bloglist-api/internal/core/domain"
)

// In-memory repository stubs shared by the service tests.

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.Posts = append([]string{}, u.Posts...)
	return &clone
}

func (r *stubUserRepo) Insert(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Username == user.Username {
			return nil, domain.ErrUsernameTaken
		}
	}
	copy := cloneUser(user)
	r.nextID++
	copy.ID = fmt.Sprintf("user-%d", r.nextID)
	r.users[copy.ID] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]*domain.User, error) {
	users := make([]*domain.User, 0, len(r.users))
	for i := 1; i <= r.nextID; i++ {
		if u, ok := r.users[fmt.Sprintf("user-%d", i)]; ok {
			users = append(users, cloneUser(u))
		}
	}
	return users, nil
}

func (r *stubUserRepo) AddPost(_ context.Context, userID, blogID string) error {
	u, ok := r.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Posts = append(u.Posts, blogID)
	return nil
}

func (r *stubUserRepo) RemovePost(_ context.Context, userID, blogID string) error {
	u, ok := r.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	kept := make([]string, 0, len(u.Posts))
	for _, id := range u.Posts {
		if id != blogID {
			kept = append(kept, id)
		}
	}
	u.Posts = kept
	return nil
}

type stubBlogRepo struct {
	blogs  map[string]*domain.Blog
	order  []string
	nextID int
}

func newStubBlogRepo() *stubBlogRepo {
	return &stubBlogRepo{blogs: make(map[string]*domain.Blog)}
}

func cloneBlog(b *domain.Blog) *domain.Blog {
	if b == nil {
		return nil
	}
	clone := *b
	return &clone
}

func (r *stubBlogRepo) Insert(_ context.Context, blog *domain.Blog) (*domain.Blog, error) {
	copy := cloneBlog(blog)
	r.nextID++
	copy.ID = fmt.Sprintf("blog-%d", r.nextID)
	r.blogs[copy.ID] = cloneBlog(copy)
	r.order = append(r.order, copy.ID)
	return cloneBlog(copy), nil
}

func (r *stubBlogRepo) FindByID(_ context.Context, id string) (*domain.Blog, error) {
	b, ok := r.blogs[id]
	if !ok {
		return nil, domain.ErrBlogNotFound
	}
	return cloneBlog(b), nil
}

func (r *stubBlogRepo) FindByIDs(_ context.Context, ids []string) ([]*domain.Blog, error) {
	blogs := make([]*domain.Blog, 0, len(ids))
	for _, id := range ids {
		if b, ok := r.blogs[id]; ok {
			blogs = append(blogs, cloneBlog(b))
		}
	}
	return blogs, nil
}

func (r *stubBlogRepo) FindAll(_ context.Context) ([]*domain.Blog, error) {
	blogs := make([]*domain.Blog, 0, len(r.order))
	for _, id := range r.order {
		if b, ok := r.blogs[id]; ok {
			blogs = append(blogs, cloneBlog(b))
		}
	}
	return blogs, nil
}

func (r *stubBlogRepo) Replace(_ context.Context, blog *domain.Blog) (*domain.Blog, error) {
	current, ok := r.blogs[blog.ID]
	if !ok {
		return nil, domain.ErrBlogNotFound
	}
	current.Title = blog.Title
	current.Author = blog.Author
	current.URL = blog.URL
	current.Likes = blog.Likes
	return cloneBlog(current), nil
}

func (r *stubBlogRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.blogs[id]; !ok {
		return domain.ErrBlogNotFound
	}
	delete(r.blogs, id)
	kept := make([]string, 0, len(r.order))
	for _, oid := range r.order {
		if oid != id {
			kept = append(kept, oid)
		}
	}
	r.order = kept
	return nil
}

// stubTxManager runs the function directly and counts invocations.
type stubTxManager struct {
	calls int
}

func (m *stubTxManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}
