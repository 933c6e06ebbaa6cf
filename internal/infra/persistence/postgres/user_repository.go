// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"messagely/internal/domain/entity"
	domainerrors "messagely/internal/domain/errors"
	"messagely/internal/domain/repository"
	"messagely/internal/domain/service"
	"messagely/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	registerUserSQL = `INSERT INTO users (username, password, first_name, last_name, phone, join_at, last_login_at)
VALUES (?, ?, ?, ?, ?, current_timestamp, current_timestamp)
RETURNING username, password, first_name, last_name, phone`

	selectPasswordSQL = `SELECT password FROM users WHERE username = ?`

	updateLoginTimestampSQL = `UPDATE users SET last_login_at = current_timestamp WHERE username = ?`

	selectAllUsersSQL = `SELECT username, first_name, last_name, phone FROM users`

	selectUserSQL = `SELECT username, first_name, last_name, phone, join_at, last_login_at
FROM users WHERE username = ?`

	selectMessagesFromSQL = `SELECT m.id, m.to_username AS username, u.first_name, u.last_name, u.phone, m.body, m.sent_at, m.read_at
FROM messages AS m
JOIN users AS u ON m.to_username = u.username
WHERE m.from_username = ?`

	selectMessagesToSQL = `SELECT m.id, m.from_username AS username, u.first_name, u.last_name, u.phone, m.body, m.sent_at, m.read_at
FROM messages AS m
JOIN users AS u ON m.from_username = u.username
WHERE m.to_username = ?`
)

// userRepository implements repository.UserRepository with hand-written SQL
// executed through GORM.
type userRepository struct {
	db     *gorm.DB
	hasher service.PasswordHasher
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB, hasher service.PasswordHasher) repository.UserRepository {
	return &userRepository{
		db:     db,
		hasher: hasher,
	}
}

// Register hashes the password and inserts the user in one statement.
func (repo *userRepository) Register(ctx context.Context, user *entity.NewUser) (*entity.RegisteredUser, error) {
	hashedPassword, err := repo.hasher.Hash(user.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	var row model.UserModel
	tx := repo.db.WithContext(ctx).
		Raw(registerUserSQL, user.Username, hashedPassword, user.FirstName, user.LastName, user.Phone).
		Scan(&row)
	if tx.Error != nil {
		return nil, translateWriteError(tx.Error, "failed to register user")
	}

	return toRegisteredUser(&row), nil
}

// Authenticate loads the stored hash and compares it with the supplied password.
func (repo *userRepository) Authenticate(ctx context.Context, username, password string) (bool, error) {
	var row model.UserModel
	tx := repo.db.WithContext(ctx).Raw(selectPasswordSQL, username).Scan(&row)
	if tx.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(tx.Error, "failed to load credentials")
	}
	if tx.RowsAffected == 0 {
		return false, errors.WithStack(domainerrors.ErrUserNotFound)
	}

	return repo.hasher.Check(password, row.Password), nil
}

// UpdateLoginTimestamp stamps last_login_at with the database's current time.
func (repo *userRepository) UpdateLoginTimestamp(ctx context.Context, username string) error {
	tx := repo.db.WithContext(ctx).Exec(updateLoginTimestampSQL, username)
	if tx.Error != nil {
		return domainerrors.NewDatabaseExecuteError(tx.Error, "failed to update login timestamp")
	}
	if tx.RowsAffected == 0 {
		return errors.WithStack(domainerrors.ErrUserNotFound.WithDetails("no user found to update"))
	}

	return nil
}

// All lists every user without passwords or timestamps.
func (repo *userRepository) All(ctx context.Context) ([]*entity.UserSummary, error) {
	var rows []model.UserModel
	if err := repo.db.WithContext(ctx).Raw(selectAllUsersSQL).Scan(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list users")
	}

	users := make([]*entity.UserSummary, 0, len(rows))
	for i := range rows {
		users = append(users, toUserSummary(&rows[i]))
	}

	return users, nil
}

// Get returns the public profile of one user.
func (repo *userRepository) Get(ctx context.Context, username string) (*entity.UserProfile, error) {
	var row model.UserModel
	tx := repo.db.WithContext(ctx).Raw(selectUserSQL, username).Scan(&row)
	if tx.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(tx.Error, "failed to get user")
	}
	if tx.RowsAffected == 0 {
		return nil, errors.WithStack(domainerrors.ErrUserNotFound)
	}

	return toUserProfile(&row), nil
}

// MessagesFrom lists messages sent by username joined with each recipient.
func (repo *userRepository) MessagesFrom(ctx context.Context, username string) ([]*entity.SentMessage, error) {
	var rows []model.MessageWithUserRow
	if err := repo.db.WithContext(ctx).Raw(selectMessagesFromSQL, username).Scan(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list sent messages")
	}

	messages := make([]*entity.SentMessage, 0, len(rows))
	for i := range rows {
		messages = append(messages, toSentMessage(&rows[i]))
	}

	return messages, nil
}

// MessagesTo lists messages received by username joined with each sender.
func (repo *userRepository) MessagesTo(ctx context.Context, username string) ([]*entity.ReceivedMessage, error) {
	var rows []model.MessageWithUserRow
	if err := repo.db.WithContext(ctx).Raw(selectMessagesToSQL, username).Scan(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list received messages")
	}

	messages := make([]*entity.ReceivedMessage, 0, len(rows))
	for i := range rows {
		messages = append(messages, toReceivedMessage(&rows[i]))
	}

	return messages, nil
}

// translateWriteError keeps constraint failures recognisable and wraps the rest.
func translateWriteError(err error, details string) error {
	if isConstraintViolation(err) {
		return domainerrors.NewConstraintViolationError(err)
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}
