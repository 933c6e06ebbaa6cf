// Package model holds the row shapes read from and written to PostgreSQL.
package model

import "time"

// UserModel mirrors the 'users' table.
type UserModel struct {
	Username    string `gorm:"column:username;primaryKey"`
	Password    string `gorm:"column:password"`
	FirstName   string `gorm:"column:first_name"`
	LastName    string `gorm:"column:last_name"`
	Phone       string `gorm:"column:phone"`
	JoinAt      time.Time
	LastLoginAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
