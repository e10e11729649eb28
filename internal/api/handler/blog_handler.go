package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bloglist/bloglist-api/internal/api/metrics"
	"github.com/bloglist/bloglist-api/internal/core/ports"
)

// BlogHandler handles HTTP requests for blog operations. Domain errors are
// returned as-is and mapped by the central error handler.
type BlogHandler struct {
	service ports.BlogService
}

func NewBlogHandler(service ports.BlogService) *BlogHandler {
	return &BlogHandler{service: service}
}

// List handles GET /api/blogs.
//
// @Summary      List all blogs with owner summaries
// @Tags         blogs
// @Produce      json
// @Success      200  {array}  blogDetailResponse
// @Router       /api/blogs [get]
func (h *BlogHandler) List(c echo.Context) error {
	details, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]blogDetailResponse, 0, len(details))
	for _, d := range details {
		resp = append(resp, toBlogDetailResponse(d))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/blogs/:id.
//
// @Summary      Get a blog by id
// @Tags         blogs
// @Produce      json
// @Param        id   path      string  true  "Blog id"
// @Success      200  {object}  blogDetailResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/blogs/{id} [get]
func (h *BlogHandler) Get(c echo.Context) error {
	detail, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBlogDetailResponse(*detail))
}

// Create handles POST /api/blogs.
//
// @Summary      Create a blog owned by the token subject
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBlogRequest  true  "Blog details"
// @Success      201   {object}  blogResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/blogs [post]
func (h *BlogHandler) Create(c echo.Context) error {
	subject, err := subjectID(c)
	if err != nil {
		return err
	}

	var req createBlogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	blog, err := h.service.Create(c.Request().Context(), subject, toCreateInput(req))
	if err != nil {
		return err
	}

	metrics.BlogsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toBlogResponse(blog))
}

// Update handles PUT /api/blogs/:id. Whether the route requires a token is a
// deployment policy; without one the edit is public.
//
// @Summary      Replace the mutable fields of a blog
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Blog id"
// @Param        body  body      updateBlogRequest  true  "Replacement fields"
// @Success      200   {object}  blogResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/blogs/{id} [put]
func (h *BlogHandler) Update(c echo.Context) error {
	var req updateBlogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	blog, err := h.service.Update(c.Request().Context(), optionalSubjectID(c), c.Param("id"), toUpdateInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBlogResponse(blog))
}

// Delete handles DELETE /api/blogs/:id. Only the owner may delete.
//
// @Summary      Delete a blog owned by the token subject
// @Tags         blogs
// @Security     BearerAuth
// @Param        id  path  string  true  "Blog id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/blogs/{id} [delete]
func (h *BlogHandler) Delete(c echo.Context) error {
	subject, err := subjectID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), subject, c.Param("id")); err != nil {
		return err
	}

	metrics.BlogsDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}

// Stats handles GET /api/blogs/stats.
//
// @Summary      Aggregate statistics over the blog collection
// @Tags         blogs
// @Produce      json
// @Success      200  {object}  blogStatsResponse
// @Router       /api/blogs/stats [get]
func (h *BlogHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toStatsResponse(stats))
}
