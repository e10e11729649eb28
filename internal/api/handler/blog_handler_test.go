package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/bloglist/bloglist-api/internal/core/domain"
	"github.com/bloglist/bloglist-api/internal/core/ports"
)

type stubBlogService struct {
	createFn func(ctx context.Context, subjectID string, input ports.CreateBlogInput) (*domain.Blog, error)
	updateFn func(ctx context.Context, subjectID, blogID string, input ports.UpdateBlogInput) (*domain.Blog, error)
	deleteFn func(ctx context.Context, subjectID, blogID string) error
	listFn   func(ctx context.Context) ([]ports.BlogDetail, error)
	getFn    func(ctx context.Context, blogID string) (*ports.BlogDetail, error)
	statsFn  func(ctx context.Context) (*ports.BlogStats, error)
}

func (s *stubBlogService) Create(ctx context.Context, subjectID string, input ports.CreateBlogInput) (*domain.Blog, error) {
	return s.createFn(ctx, subjectID, input)
}

func (s *stubBlogService) Update(ctx context.Context, subjectID, blogID string, input ports.UpdateBlogInput) (*domain.Blog, error) {
	return s.updateFn(ctx, subjectID, blogID, input)
}

func (s *stubBlogService) Delete(ctx context.Context, subjectID, blogID string) error {
	return s.deleteFn(ctx, subjectID, blogID)
}

func (s *stubBlogService) List(ctx context.Context) ([]ports.BlogDetail, error) {
	return s.listFn(ctx)
}

func (s *stubBlogService) Get(ctx context.Context, blogID string) (*ports.BlogDetail, error) {
	return s.getFn(ctx, blogID)
}

func (s *stubBlogService) Stats(ctx context.Context) (*ports.BlogStats, error) {
	return s.statsFn(ctx)
}

func newBlogTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestBlogHandler_Create_Success(t *testing.T) {
	stub := &stubBlogService{
		createFn: func(_ context.Context, subjectID string, input ports.CreateBlogInput) (*domain.Blog, error) {
			if subjectID != "user-1" {
				t.Fatalf("unexpected subject: %s", subjectID)
			}
			if input.Title != "Canonical string reduction" || input.Likes != 12 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Blog{ID: "blog-1", Title: input.Title, Author: input.Author, URL: input.URL, Likes: input.Likes, UserID: subjectID}, nil
		},
	}
	h := NewBlogHandler(stub)

	c, rec := newBlogTestContext(t, http.MethodPost, "/api/blogs",
		`{"title":"Canonical string reduction","author":"Edsger W. Dijkstra","url":"http://example.com/ewd808","likes":12}`)
	c.Set("user_id", "user-1")

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "blog-1" || resp["user"] != "user-1" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestBlogHandler_Create_MissingSubject(t *testing.T) {
	stub := &stubBlogService{
		createFn: func(context.Context, string, ports.CreateBlogInput) (*domain.Blog, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewBlogHandler(stub)

	c, _ := newBlogTestContext(t, http.MethodPost, "/api/blogs", `{"title":"t","url":"u"}`)

	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestBlogHandler_Create_MissingURL(t *testing.T) {
	stub := &stubBlogService{
		createFn: func(context.Context, string, ports.CreateBlogInput) (*domain.Blog, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewBlogHandler(stub)

	c, _ := newBlogTestContext(t, http.MethodPost, "/api/blogs", `{"title":"no url"}`)
	c.Set("user_id", "user-1")

	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
	if !strings.Contains(he.Message.(string), "url is required") {
		t.Fatalf("unexpected message: %v", he.Message)
	}
}

func TestBlogHandler_Delete_Success(t *testing.T) {
	deleted := ""
	stub := &stubBlogService{
		deleteFn: func(_ context.Context, subjectID, blogID string) error {
			if subjectID != "user-1" {
				t.Fatalf("unexpected subject: %s", subjectID)
			}
			deleted = blogID
			return nil
		},
	}
	h := NewBlogHandler(stub)

	c, rec := newBlogTestContext(t, http.MethodDelete, "/api/blogs/blog-1", "")
	c.SetParamNames("id")
	c.SetParamValues("blog-1")
	c.Set("user_id", "user-1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rec.Body.String())
	}
	if deleted != "blog-1" {
		t.Fatalf("service not called with blog id")
	}
}

func TestBlogHandler_Delete_NotOwnerPropagates(t *testing.T) {
	stub := &stubBlogService{
		deleteFn: func(context.Context, string, string) error {
			return domain.ErrNotOwner
		},
	}
	h := NewBlogHandler(stub)

	c, _ := newBlogTestContext(t, http.MethodDelete, "/api/blogs/blog-1", "")
	c.SetParamNames("id")
	c.SetParamValues("blog-1")
	c.Set("user_id", "user-2")

	if err := h.Delete(c); !strings.Contains(err.Error(), "does not belong") {
		t.Fatalf("expected ErrNotOwner to propagate, got %v", err)
	}
}

func TestBlogHandler_List(t *testing.T) {
	stub := &stubBlogService{
		listFn: func(context.Context) ([]ports.BlogDetail, error) {
			return []ports.BlogDetail{
				{ID: "blog-1", Title: "a", URL: "ua", User: &ports.OwnerSummary{ID: "user-1", Username: "root"}},
				{ID: "blog-2", Title: "b", URL: "ub", User: &ports.OwnerSummary{ID: "user-1", Username: "root"}},
			}, nil
		},
	}
	h := NewBlogHandler(stub)

	c, rec := newBlogTestContext(t, http.MethodGet, "/api/blogs", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 blogs, got %d", len(resp))
	}
	owner, ok := resp[0]["user"].(map[string]any)
	if !ok || owner["username"] != "root" {
		t.Fatalf("owner summary missing: %+v", resp[0])
	}
}

func TestBlogHandler_Update_Public(t *testing.T) {
	stub := &stubBlogService{
		updateFn: func(_ context.Context, subjectID, blogID string, input ports.UpdateBlogInput) (*domain.Blog, error) {
			if subjectID != "" {
				t.Fatalf("expected empty subject on public route, got %s", subjectID)
			}
			return &domain.Blog{ID: blogID, Title: input.Title, URL: input.URL, Likes: input.Likes, UserID: "user-1"}, nil
		},
	}
	h := NewBlogHandler(stub)

	c, rec := newBlogTestContext(t, http.MethodPut, "/api/blogs/blog-1", `{"title":"new","url":"new-url","likes":3}`)
	c.SetParamNames("id")
	c.SetParamValues("blog-1")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestBlogHandler_Stats(t *testing.T) {
	stub := &stubBlogService{
		statsFn: func(context.Context) (*ports.BlogStats, error) {
			return &ports.BlogStats{
				Blogs:      6,
				TotalLikes: 36,
				Favorite:   &ports.FavoriteBlog{Title: "Canonical string reduction", Author: "Edsger W. Dijkstra", Likes: 12},
				MostBlogs:  &ports.AuthorBlogs{Author: "Robert C. Martin", Blogs: 3},
				MostLikes:  &ports.AuthorLikes{Author: "Edsger W. Dijkstra", Likes: 17},
			}, nil
		},
	}
	h := NewBlogHandler(stub)

	c, rec := newBlogTestContext(t, http.MethodGet, "/api/blogs/stats", "")
	if err := h.Stats(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["total_likes"] != float64(36) {
		t.Fatalf("unexpected total likes: %v", resp["total_likes"])
	}
}
