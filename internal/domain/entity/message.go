package entity

import "time"

// SentMessage is a message listed from the sender's side, with the recipient nested.
type SentMessage struct {
	ID     int64       `json:"id"`
	ToUser UserSummary `json:"to_user"`
	Body   string      `json:"body"`
	SentAt time.Time   `json:"sent_at"`
	ReadAt *time.Time  `json:"read_at"`
}

// ReceivedMessage is a message listed from the recipient's side, with the sender nested.
type ReceivedMessage struct {
	ID       int64       `json:"id"`
	FromUser UserSummary `json:"from_user"`
	Body     string      `json:"body"`
	SentAt   time.Time   `json:"sent_at"`
	ReadAt   *time.Time  `json:"read_at"`
}
