package domain

// Blog is the core aggregate: a single post owned by a user.
type Blog struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author,omitempty"`
	URL    string `json:"url"`
	Likes  int    `json:"likes"`
	UserID string `json:"user"`
}

// OwnedBy reports whether the blog belongs to the given user. Ownership
// comparisons are string-based on stringified ids.
func (b *Blog) OwnedBy(userID string) bool {
	return b.UserID == userID
}

// Validate checks the required fields before any write is attempted.
func (b *Blog) Validate() error {
	if b.Title == "" {
		return NewValidationError("title is required")
	}
	if b.URL == "" {
		return NewValidationError("url is required")
	}
	return nil
}
