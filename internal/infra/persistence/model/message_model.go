package model

import "time"

// MessageWithUserRow is one row of a messages/users join: the message columns
// plus the public columns of the user on the other side of it.
type MessageWithUserRow struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string
	Phone     string
	Body      string
	SentAt    time.Time
	ReadAt    *time.Time
}
