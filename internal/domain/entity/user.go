package entity

import "time"

// Role is the authorization role assigned to a user at registration.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is the aggregate root for the account domain.
// PasswordHash holds a bcrypt hash; the plain password never reaches this struct.
// EmailVerified flips false -> true exactly once, there is no way back.
type User struct {
	ID            string
	Username      string
	Email         string
	PasswordHash  string
	FullName      string
	EmailVerified bool
	Role          Role
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
