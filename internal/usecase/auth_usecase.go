// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "context"

// --- Input DTOs ---

// LoginInput defines the credentials supplied to log in.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

// --- Output DTOs ---

// TokenOutput carries the signed token returned by login and registration.
type TokenOutput struct {
	Token string `json:"token"`
}

// AuthUsecase defines login and registration.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*TokenOutput, error)
	Register(ctx context.Context, input *RegisterInput) (*TokenOutput, error)
}
