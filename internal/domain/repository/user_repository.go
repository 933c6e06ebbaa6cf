// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"messagely/internal/domain/entity"
)

// UserRepository owns every query against the users table and the user side of messages.
// Each method performs a single round trip to the database.
type UserRepository interface {
	// Register hashes the password and inserts a new user with join and login
	// timestamps set to the database's current time.
	Register(ctx context.Context, user *entity.NewUser) (*entity.RegisteredUser, error)

	// Authenticate reports whether password matches the stored hash for username.
	// A missing user is an error of kind NotFound, never false.
	Authenticate(ctx context.Context, username, password string) (bool, error)

	// UpdateLoginTimestamp sets last_login_at to now.
	UpdateLoginTimestamp(ctx context.Context, username string) error

	// All lists basic information for every user, in database order.
	All(ctx context.Context) ([]*entity.UserSummary, error)

	// Get returns the public profile of one user.
	Get(ctx context.Context, username string) (*entity.UserProfile, error)

	// MessagesFrom lists messages sent by username, each with its recipient.
	MessagesFrom(ctx context.Context, username string) ([]*entity.SentMessage, error)

	// MessagesTo lists messages received by username, each with its sender.
	MessagesTo(ctx context.Context, username string) ([]*entity.ReceivedMessage, error)
}
