package models

import "time"

// User is the credential record, one per account. The ID is a time-ordered
// xid string so users sort chronologically without a separate counter.
type User struct {
	ID           string    `gorm:"column:id;type:text;primaryKey" json:"id"`
	FullName     string    `gorm:"column:full_name;type:text" json:"full_name"`
	Email        string    `gorm:"column:email;type:text;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;type:text" json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
}

func (User) TableName() string { return "users" }
