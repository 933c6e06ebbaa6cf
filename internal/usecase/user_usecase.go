package usecase

import (
	"context"

	"messagely/internal/domain/entity"
)

// UserUsecase defines the read-only user directory.
type UserUsecase interface {
	ListUsers(ctx context.Context) ([]*entity.UserSummary, error)
	GetUser(ctx context.Context, username string) (*entity.UserProfile, error)
	ListMessagesFrom(ctx context.Context, username string) ([]*entity.SentMessage, error)
	ListMessagesTo(ctx context.Context, username string) ([]*entity.ReceivedMessage, error)
}
