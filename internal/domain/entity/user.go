// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// NewUser carries the fields accepted by registration.
type NewUser struct {
	Username  string
	Password  string // Plaintext; hashed by the repository before it is persisted.
	FirstName string
	LastName  string
	Phone     string
}

// RegisteredUser is what registration returns: the stored identity with the
// hashed password, but without timestamps.
type RegisteredUser struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

// UserSummary is the basic public information of a user.
type UserSummary struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

// UserProfile is the full public profile of a user. It never carries the password.
type UserProfile struct {
	Username    string    `json:"username"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Phone       string    `json:"phone"`
	JoinAt      time.Time `json:"join_at"`
	LastLoginAt time.Time `json:"last_login_at"`
}
