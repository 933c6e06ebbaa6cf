package impl

import (
	"context"
	"log/slog"

	deliverycontext "messagely/internal/delivery/context"
	"messagely/internal/domain/entity"
	"messagely/internal/domain/repository"
	"messagely/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *userService) ListUsers(ctx context.Context) ([]*entity.UserSummary, error) {
	users, err := srv.userRepo.All(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list users", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

func (srv *userService) GetUser(ctx context.Context, username string) (*entity.UserProfile, error) {
	user, err := srv.userRepo.Get(ctx, username)
	if err != nil {
		srv.log(ctx).Debug("Failed to get user", slog.String("username", username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to get user")
	}

	return user, nil
}

func (srv *userService) ListMessagesFrom(ctx context.Context, username string) ([]*entity.SentMessage, error) {
	messages, err := srv.userRepo.MessagesFrom(ctx, username)
	if err != nil {
		srv.log(ctx).Error("Failed to list sent messages", slog.String("username", username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list sent messages")
	}

	return messages, nil
}

func (srv *userService) ListMessagesTo(ctx context.Context, username string) ([]*entity.ReceivedMessage, error) {
	messages, err := srv.userRepo.MessagesTo(ctx, username)
	if err != nil {
		srv.log(ctx).Error("Failed to list received messages", slog.String("username", username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list received messages")
	}

	return messages, nil
}
