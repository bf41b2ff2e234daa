package models

// Role represents a user role in the marketplace
type Role string

// User roles
const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

// IsValid checks if the role is one of the known roles
func (r Role) IsValid() bool {
	return r == RoleStudent || r == RoleTeacher
}

// User represents a registered user
type User struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // Never serialize password hash
	Role         Role   `json:"role"`
}

// RegisterRequest represents a request to create a new account
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// LoginRequest represents a sign-in request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Viewer is the authenticated identity threaded through request handling
//
// A zero Viewer (ID == 0) means an anonymous request.
type Viewer struct {
	ID   int
	Role Role
}

// IsAnonymous reports whether the viewer is not signed in
func (v Viewer) IsAnonymous() bool {
	return v.ID == 0
}

// Profile represents the publicly visible part of a user
type Profile struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
