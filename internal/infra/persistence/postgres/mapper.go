package postgres

import (
	"messagely/internal/domain/entity"
	"messagely/internal/infra/persistence/model"
)

// --- Mapper Functions ---
// These helpers convert raw rows into domain records. They never copy the
// password except for the registration result, which returns the stored hash.

func toRegisteredUser(row *model.UserModel) *entity.RegisteredUser {
	if row == nil {
		return nil
	}

	return &entity.RegisteredUser{
		Username:  row.Username,
		Password:  row.Password,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Phone:     row.Phone,
	}
}

func toUserSummary(row *model.UserModel) *entity.UserSummary {
	if row == nil {
		return nil
	}

	return &entity.UserSummary{
		Username:  row.Username,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Phone:     row.Phone,
	}
}

func toUserProfile(row *model.UserModel) *entity.UserProfile {
	if row == nil {
		return nil
	}

	return &entity.UserProfile{
		Username:    row.Username,
		FirstName:   row.FirstName,
		LastName:    row.LastName,
		Phone:       row.Phone,
		JoinAt:      row.JoinAt,
		LastLoginAt: row.LastLoginAt,
	}
}

// counterpart extracts the user on the other side of a joined message row.
func counterpart(row *model.MessageWithUserRow) entity.UserSummary {
	return entity.UserSummary{
		Username:  row.Username,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Phone:     row.Phone,
	}
}

func toSentMessage(row *model.MessageWithUserRow) *entity.SentMessage {
	if row == nil {
		return nil
	}

	return &entity.SentMessage{
		ID:     row.ID,
		ToUser: counterpart(row),
		Body:   row.Body,
		SentAt: row.SentAt,
		ReadAt: row.ReadAt,
	}
}

func toReceivedMessage(row *model.MessageWithUserRow) *entity.ReceivedMessage {
	if row == nil {
		return nil
	}

	return &entity.ReceivedMessage{
		ID:       row.ID,
		FromUser: counterpart(row),
		Body:     row.Body,
		SentAt:   row.SentAt,
		ReadAt:   row.ReadAt,
	}
}
