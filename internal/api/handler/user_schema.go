package handler

// --- Request types ---

type registerUserRequest struct {
	Username string `json:"username" validate:"required"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Response types ---

// userResponse is the unpopulated view returned on registration: posts is a
// list of plain ids (empty for a fresh account). The password hash is never
// part of any response.
type userResponse struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Name     string   `json:"name,omitempty"`
	Posts    []string `json:"posts"`
}

type postSummaryResponse struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author,omitempty"`
	URL    string `json:"url"`
}

// userDetailResponse is the read-path view with posts summaries attached.
type userDetailResponse struct {
	ID       string                `json:"id"`
	Username string                `json:"username"`
	Name     string                `json:"name,omitempty"`
	Posts    []postSummaryResponse `json:"posts"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
}
