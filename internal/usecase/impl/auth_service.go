// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "messagely/internal/delivery/context"
	"messagely/internal/domain/entity"
	domainerrors "messagely/internal/domain/errors"
	"messagely/internal/domain/repository"
	"messagely/internal/domain/service"
	"messagely/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	tokenService service.TokenService
	publisher    service.EventPublisher
	logger       *slog.Logger
	now          func() time.Time
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	TokenService service.TokenService
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		tokenService: params.TokenService,
		publisher:    params.Publisher,
		logger:       params.Logger,
		now:          time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies the credentials, issues a token and then stamps the login time.
// The token is signed before the timestamp update; a failed update still fails the call.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenOutput, error) {
	ok, err := srv.userRepo.Authenticate(ctx, input.Username, input.Password)
	if err != nil {
		srv.log(ctx).Warn("Login failed to authenticate", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to authenticate user")
	}
	if !ok {
		srv.log(ctx).Info("Login rejected", slog.String("username", input.Username))

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	token, err := srv.tokenService.Sign(input.Username)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenSignFailed, err.Error())
	}

	if err := srv.userRepo.UpdateLoginTimestamp(ctx, input.Username); err != nil {
		srv.log(ctx).Error("Failed to update login timestamp", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update login timestamp")
	}

	srv.publish(ctx, service.AccountEventLoggedIn, input.Username)
	srv.log(ctx).Debug("Login succeeded", slog.String("username", input.Username))

	return &usecase.TokenOutput{Token: token}, nil
}

// Register stores the new user and issues a token for the stored username.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.TokenOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username))

	registered, err := srv.userRepo.Register(ctx, &entity.NewUser{
		Username:  input.Username,
		Password:  input.Password,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to register user")
	}

	token, err := srv.tokenService.Sign(registered.Username)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenSignFailed, err.Error())
	}

	srv.publish(ctx, service.AccountEventRegistered, registered.Username)
	srv.log(ctx).Debug("Registration completed", slog.String("username", registered.Username))

	return &usecase.TokenOutput{Token: token}, nil
}

// publish emits an account event. Failures are logged and never returned.
func (srv *authService) publish(ctx context.Context, eventType service.AccountEventType, username string) {
	event := &service.AccountEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		Username:   username,
		OccurredAt: srv.now().UTC(),
	}

	if err := srv.publisher.PublishAccountEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish account event",
			slog.String("type", string(eventType)),
			slog.String("username", username),
			slog.Any("error", err),
		)
	}
}
