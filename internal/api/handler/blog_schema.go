package handler

// errorResponse mirrors the envelope rendered by the central error handler;
// declared here for the route documentation.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type createBlogRequest struct {
	Title  string `json:"title"  validate:"required"`
	Author string `json:"author"`
	URL    string `json:"url"    validate:"required"`
	Likes  int    `json:"likes"`
}

type updateBlogRequest struct {
	Title  string `json:"title"  validate:"required"`
	Author string `json:"author"`
	URL    string `json:"url"    validate:"required"`
	Likes  int    `json:"likes"`
}

// --- Response types ---

// blogResponse is the unpopulated view returned by mutations: the owner is a
// plain id, not an embedded summary.
type blogResponse struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author,omitempty"`
	URL    string `json:"url"`
	Likes  int    `json:"likes"`
	User   string `json:"user"`
}

type ownerResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
}

// blogDetailResponse is the read-path view with the owner summary attached.
type blogDetailResponse struct {
	ID     string         `json:"id"`
	Title  string         `json:"title"`
	Author string         `json:"author,omitempty"`
	URL    string         `json:"url"`
	Likes  int            `json:"likes"`
	User   *ownerResponse `json:"user,omitempty"`
}

type favoriteBlogResponse struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

type authorBlogsResponse struct {
	Author string `json:"author"`
	Blogs  int    `json:"blogs"`
}

type authorLikesResponse struct {
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

type blogStatsResponse struct {
	Blogs      int                   `json:"blogs"`
	TotalLikes int                   `json:"total_likes"`
	Favorite   *favoriteBlogResponse `json:"favorite,omitempty"`
	MostBlogs  *authorBlogsResponse  `json:"most_blogs,omitempty"`
	MostLikes  *authorLikesResponse  `json:"most_likes,omitempty"`
}
