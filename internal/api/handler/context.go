package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// subjectID extracts the acting user id injected by the Auth middleware.
// An empty id on a protected route means the middleware did not run; reject
// with 401 before any service call.
func subjectID(c echo.Context) (string, error) {
	id, _ := c.Get("user_id").(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "token missing or invalid")
	}
	return id, nil
}

// optionalSubjectID returns the acting user id when the route ran through the
// Auth middleware, or "" on public routes (open-edit policy).
func optionalSubjectID(c echo.Context) string {
	id, _ := c.Get("user_id").(string)
	return id
}
