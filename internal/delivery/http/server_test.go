package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"messagely/config"
	"messagely/internal/delivery/http/middleware"
	"messagely/internal/delivery/http/response"
	"messagely/internal/delivery/http/router"
	"messagely/internal/delivery/http/router/handler"
	"messagely/internal/domain/entity"
	domainerrors "messagely/internal/domain/errors"
	"messagely/internal/domain/service"
	"messagely/internal/infra/auth"
	mockSvc "messagely/internal/mocks/service"
	"messagely/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// memoryUserRepository keeps users in a map and hashes with the real hasher.
type memoryUserRepository struct {
	mu       sync.Mutex
	hasher   service.PasswordHasher
	users    map[string]*entity.RegisteredUser
	messages []*entity.SentMessage
	from     map[int64]string
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{
		hasher: auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		users:  make(map[string]*entity.RegisteredUser),
		from:   make(map[int64]string),
	}
}

func (r *memoryUserRepository) Register(_ context.Context, user *entity.NewUser) (*entity.RegisteredUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Username]; ok {
		return nil, domainerrors.NewConstraintViolationError(errors.New(`duplicate key value violates unique constraint "users_pkey"`))
	}
	hash, err := r.hasher.Hash(user.Password)
	if err != nil {
		return nil, err
	}
	stored := &entity.RegisteredUser{
		Username:  user.Username,
		Password:  hash,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Phone:     user.Phone,
	}
	r.users[user.Username] = stored

	return stored, nil
}

func (r *memoryUserRepository) Authenticate(_ context.Context, username, password string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[username]
	if !ok {
		return false, errors.WithStack(domainerrors.ErrUserNotFound)
	}

	return r.hasher.Check(password, user.Password), nil
}

func (r *memoryUserRepository) UpdateLoginTimestamp(_ context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[username]; !ok {
		return errors.WithStack(domainerrors.ErrUserNotFound)
	}

	return nil
}

func (r *memoryUserRepository) All(context.Context) ([]*entity.UserSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := make([]*entity.UserSummary, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, &entity.UserSummary{Username: user.Username, FirstName: user.FirstName, LastName: user.LastName, Phone: user.Phone})
	}

	return users, nil
}

func (r *memoryUserRepository) Get(_ context.Context, username string) (*entity.UserProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[username]
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrUserNotFound)
	}

	return &entity.UserProfile{Username: user.Username, FirstName: user.FirstName, LastName: user.LastName, Phone: user.Phone}, nil
}

func (r *memoryUserRepository) MessagesFrom(_ context.Context, username string) ([]*entity.SentMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	messages := make([]*entity.SentMessage, 0)
	for _, msg := range r.messages {
		if r.from[msg.ID] == username {
			messages = append(messages, msg)
		}
	}

	return messages, nil
}

func (r *memoryUserRepository) MessagesTo(context.Context, string) ([]*entity.ReceivedMessage, error) {
	return []*entity.ReceivedMessage{}, nil
}

type testServer struct {
	echo *echo.Echo
	repo *memoryUserRepository
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.Auth.SecretKey = "test-secret"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().PublishAccountEvent(mock.Anything, mock.Anything).Return(nil).Maybe()

	repo := newMemoryUserRepository()
	authUC := impl.NewAuthService(impl.AuthServiceParams{
		UserRepo:     repo,
		TokenService: tokenService,
		Publisher:    publisher,
		Logger:       logger,
	})
	userUC := impl.NewUserService(impl.UserServiceParams{UserRepo: repo, Logger: logger})

	r := router.NewRouter(router.RouterParams{
		AuthHandler:    handler.NewAuthHandler(authUC),
		UserHandler:    handler.NewUserHandler(userUC),
		AuthMiddleware: middleware.NewAuthMiddleware(tokenService),
	})

	return &testServer{echo: newEcho(cfg, logger, r), repo: repo}
}

func (s *testServer) do(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))

	return out
}

const aliceJSON = `{"username":"alice","password":"pw1","first_name":"A","last_name":"L","phone":"111"}`

func TestServer_LoginScenario(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(http.MethodPost, "/register", aliceJSON, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	registered := decode[map[string]string](t, rec)
	assert.NotEmpty(t, registered["token"])

	rec = srv.do(http.MethodPost, "/login", `{"username":"alice","password":"pw1"}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotEmpty(t, decode[map[string]string](t, rec)["token"])

	rec = srv.do(http.MethodPost, "/login", `{"username":"alice","password":"nope"}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	failed := decode[response.Response](t, rec)
	assert.False(t, failed.Success)
	assert.Equal(t, "Invalid username or password", failed.Message)
	assert.Equal(t, "INVALID_CREDENTIALS", failed.Error.Code)

	rec = srv.do(http.MethodPost, "/login", `{"username":"bob","password":"x"}`, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "USER_NOT_FOUND", decode[response.Response](t, rec).Error.Code)
}

func TestServer_RegisterDuplicate(t *testing.T) {
	srv := newTestServer(t)

	require.Equal(t, http.StatusOK, srv.do(http.MethodPost, "/register", aliceJSON, "").Code)

	rec := srv.do(http.MethodPost, "/register", aliceJSON, "")
	require.Equal(t, http.StatusConflict, rec.Code)
	body := decode[response.Response](t, rec)
	assert.Equal(t, "CONSTRAINT_VIOLATION", body.Error.Code)
	assert.Contains(t, body.Error.Details, "users_pkey")
}

func TestServer_RegisterMissingFields(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(http.MethodPost, "/register", `{"username":"alice","password":"pw1"}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode[response.Response](t, rec)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Contains(t, body.Error.Details, "first_name is required")
	assert.Empty(t, srv.repo.users)
}

func TestServer_RegisterEmptyPhone(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(http.MethodPost, "/register", `{"username":"alice","password":"secret","first_name":"A","last_name":"L","phone":""}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotEmpty(t, decode[map[string]string](t, rec)["token"])
	require.Contains(t, srv.repo.users, "alice")
	assert.Empty(t, srv.repo.users["alice"].Phone)
}

func TestServer_MalformedBody(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(http.MethodPost, "/login", `{"username":`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", decode[response.Response](t, rec).Error.Code)
}

func TestServer_UsersRequireToken(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(http.MethodGet, "/users", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "MISSING_TOKEN", decode[response.Response](t, rec).Error.Code)

	rec = srv.do(http.MethodGet, "/users", "", "garbage")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_TOKEN", decode[response.Response](t, rec).Error.Code)
}

func TestServer_UserDirectory(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(http.MethodPost, "/register", aliceJSON, "")
	require.Equal(t, http.StatusOK, rec.Code)
	token := decode[map[string]string](t, rec)["token"]

	srv.repo.messages = append(srv.repo.messages, &entity.SentMessage{
		ID:     1,
		ToUser: entity.UserSummary{Username: "bob", FirstName: "B", LastName: "O", Phone: "222"},
		Body:   "hello bob",
		SentAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	srv.repo.from[1] = "alice"

	rec = srv.do(http.MethodGet, "/users", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
	users := decode[map[string][]entity.UserSummary](t, rec)["users"]
	require.Len(t, users, 1)
	assert.Equal(t, "alice", users[0].Username)

	rec = srv.do(http.MethodGet, "/users/alice", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
	assert.Equal(t, "A", decode[map[string]entity.UserProfile](t, rec)["user"].FirstName)

	rec = srv.do(http.MethodGet, "/users/ghost", "", token)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = srv.do(http.MethodGet, "/users/alice/from", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	messages := decode[map[string][]entity.SentMessage](t, rec)["messages"]
	require.Len(t, messages, 1)
	assert.Equal(t, "bob", messages[0].ToUser.Username)
	assert.Nil(t, messages[0].ReadAt)

	rec = srv.do(http.MethodGet, "/users/alice/to", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"messages":[]}`, rec.Body.String())
}

func TestServer_HealthAndRequestID(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-Id", "req-7")
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-7", rec.Header().Get("X-Request-Id"))
	assert.True(t, decode[response.Response](t, rec).Success)
}
