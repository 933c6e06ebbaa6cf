package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"
	"testing"
	"time"

	"messagely/internal/domain/entity"
	domainerrors "messagely/internal/domain/errors"
	"messagely/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fakeHasher prefixes passwords so tests can assert on what was stored.
type fakeHasher struct {
	err error
}

func (h fakeHasher) Hash(password string) (string, error) {
	if h.err != nil {
		return "", h.err
	}

	return "hashed:" + password, nil
}

func (h fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

func newMockRepository(t *testing.T, hasher fakeHasher) (repository.UserRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return NewUserRepository(db, hasher), mock
}

// expectedSQL renders a query the way the postgres dialector sends it and
// escapes it for the regexp matcher.
func expectedSQL(query string) string {
	n := 0
	bound := regexp.MustCompile(`\?`).ReplaceAllStringFunc(query, func(string) string {
		n++

		return fmt.Sprintf("$%d", n)
	})

	return "^" + regexp.QuoteMeta(strings.Join(strings.Fields(bound), " ")) + "$"
}

var userProfileColumns = []string{"username", "first_name", "last_name", "phone", "join_at", "last_login_at"}

var messageColumns = []string{"id", "username", "first_name", "last_name", "phone", "body", "sent_at", "read_at"}

func TestUserRepository_Register(t *testing.T) {
	ctx := context.Background()
	newUser := &entity.NewUser{Username: "alice", Password: "pw1", FirstName: "A", LastName: "L", Phone: "111"}

	t.Run("stores hashed password", func(t *testing.T) {
		repo, mock := newMockRepository(t, fakeHasher{})

		mock.ExpectQuery(expectedSQL(registerUserSQL)).
			WithArgs("alice", "hashed:pw1", "A", "L", "111").
			WillReturnRows(sqlmock.NewRows([]string{"username", "password", "first_name", "last_name", "phone"}).
				AddRow("alice", "hashed:pw1", "A", "L", "111"))

		got, err := repo.Register(ctx, newUser)
		require.NoError(t, err)
		assert.Equal(t, &entity.RegisteredUser{
			Username:  "alice",
			Password:  "hashed:pw1",
			FirstName: "A",
			LastName:  "L",
			Phone:     "111",
		}, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate username is a constraint violation", func(t *testing.T) {
		repo, mock := newMockRepository(t, fakeHasher{})

		pgErr := &pgconn.PgError{
			Code:    pgUniqueViolation,
			Message: `duplicate key value violates unique constraint "users_pkey"`,
		}
		mock.ExpectQuery(expectedSQL(registerUserSQL)).
			WithArgs("alice", "hashed:pw1", "A", "L", "111").
			WillReturnError(pgErr)

		_, err := repo.Register(ctx, newUser)
		require.Error(t, err)
		assert.Equal(t, domainerrors.KindConstraintViolation, domainerrors.KindOf(err))
		assert.Contains(t, err.Error(), "users_pkey")
		assert.ErrorIs(t, err, pgErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("other database errors are unknown", func(t *testing.T) {
		repo, mock := newMockRepository(t, fakeHasher{})

		mock.ExpectQuery(expectedSQL(registerUserSQL)).
			WillReturnError(sql.ErrConnDone)

		_, err := repo.Register(ctx, newUser)
		require.Error(t, err)
		assert.Equal(t, domainerrors.KindUnknown, domainerrors.KindOf(err))
		assert.ErrorIs(t, err, sql.ErrConnDone)
	})

	t.Run("hash failure never reaches the database", func(t *testing.T) {
		repo, mock := newMockRepository(t, fakeHasher{err: errors.New("cost out of range")})

		_, err := repo.Register(ctx, newUser)
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_Authenticate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		password string
		rows     *sqlmock.Rows
		want     bool
		wantErr  error
	}{
		{
			name:     "correct password",
			password: "pw1",
			rows:     sqlmock.NewRows([]string{"password"}).AddRow("hashed:pw1"),
			want:     true,
		},
		{
			name:     "wrong password",
			password: "nope",
			rows:     sqlmock.NewRows([]string{"password"}).AddRow("hashed:pw1"),
			want:     false,
		},
		{
			name:     "unknown username",
			password: "pw1",
			rows:     sqlmock.NewRows([]string{"password"}),
			wantErr:  domainerrors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t, fakeHasher{})

			mock.ExpectQuery(expectedSQL(selectPasswordSQL)).
				WithArgs("alice").
				WillReturnRows(tt.rows)

			got, err := repo.Authenticate(ctx, "alice", tt.password)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_UpdateLoginTimestamp(t *testing.T) {
	ctx := context.Background()

	t.Run("updates existing user", func(t *testing.T) {
		repo, mock := newMockRepository(t, fakeHasher{})

		mock.ExpectExec(expectedSQL(updateLoginTimestampSQL)).
			WithArgs("alice").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdateLoginTimestamp(ctx, "alice"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown user is not found", func(t *testing.T) {
		repo, mock := newMockRepository(t, fakeHasher{})

		mock.ExpectExec(expectedSQL(updateLoginTimestampSQL)).
			WithArgs("ghost").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateLoginTimestamp(ctx, "ghost")
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_All(t *testing.T) {
	repo, mock := newMockRepository(t, fakeHasher{})

	mock.ExpectQuery(expectedSQL(selectAllUsersSQL)).
		WillReturnRows(sqlmock.NewRows([]string{"username", "first_name", "last_name", "phone"}).
			AddRow("alice", "A", "L", "111").
			AddRow("bob", "B", "O", "222"))

	got, err := repo.All(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []*entity.UserSummary{
		{Username: "alice", FirstName: "A", LastName: "L", Phone: "111"},
		{Username: "bob", FirstName: "B", LastName: "O", Phone: "222"},
	}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Get(t *testing.T) {
	ctx := context.Background()
	joined := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	lastLogin := joined.Add(time.Hour)

	t.Run("found", func(t *testing.T) {
		repo, mock := newMockRepository(t, fakeHasher{})

		mock.ExpectQuery(expectedSQL(selectUserSQL)).
			WithArgs("alice").
			WillReturnRows(sqlmock.NewRows(userProfileColumns).
				AddRow("alice", "A", "L", "111", joined, lastLogin))

		got, err := repo.Get(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, &entity.UserProfile{
			Username:    "alice",
			FirstName:   "A",
			LastName:    "L",
			Phone:       "111",
			JoinAt:      joined,
			LastLoginAt: lastLogin,
		}, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newMockRepository(t, fakeHasher{})

		mock.ExpectQuery(expectedSQL(selectUserSQL)).
			WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows(userProfileColumns))

		_, err := repo.Get(ctx, "ghost")
		require.Error(t, err)
		assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
	})
}

func TestUserRepository_MessagesFrom(t *testing.T) {
	repo, mock := newMockRepository(t, fakeHasher{})
	sent := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)

	mock.ExpectQuery(expectedSQL(selectMessagesFromSQL)).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(messageColumns).
			AddRow(int64(1), "bob", "B", "O", "222", "hello bob", sent, nil))

	got, err := repo.MessagesFrom(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, &entity.SentMessage{
		ID:     1,
		ToUser: entity.UserSummary{Username: "bob", FirstName: "B", LastName: "O", Phone: "222"},
		Body:   "hello bob",
		SentAt: sent,
	}, got[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_MessagesTo(t *testing.T) {
	repo, mock := newMockRepository(t, fakeHasher{})
	sent := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	read := sent.Add(time.Minute)

	mock.ExpectQuery(expectedSQL(selectMessagesToSQL)).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(messageColumns).
			AddRow(int64(2), "bob", "B", "O", "222", "hi alice", sent, read))

	got, err := repo.MessagesTo(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "bob", got[0].FromUser.Username)
	assert.Equal(t, "hi alice", got[0].Body)
	require.NotNil(t, got[0].ReadAt)
	assert.Equal(t, read, *got[0].ReadAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_MessagesTo_Empty(t *testing.T) {
	repo, mock := newMockRepository(t, fakeHasher{})

	mock.ExpectQuery(expectedSQL(selectMessagesToSQL)).
		WithArgs("carol").
		WillReturnRows(sqlmock.NewRows(messageColumns))

	got, err := repo.MessagesTo(context.Background(), "carol")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}
