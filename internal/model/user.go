package model

// Roles accepted for a user record, compared case-insensitively.
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// User represents a directory entry. All four fields are replaceable on
// update; the id assigned at creation never changes.
type User struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

// StoredUser pairs a user record with its assigned id. It is the shape
// returned by the list and item endpoints.
type StoredUser struct {
	ID   int64 `json:"id"`
	User User  `json:"user"`
}
