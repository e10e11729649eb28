package domain

// User models a registered account. Posts holds the ids of the blogs this
// user owns, in insertion order; it must always match the set of blogs whose
// user field references this account.
type User struct {
	ID           string   `json:"id"`
	Username     string   `json:"username"`
	Name         string   `json:"name,omitempty"`
	PasswordHash string   `json:"-"`
	Posts        []string `json:"posts"`
}
