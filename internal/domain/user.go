package domain

import (
	"time"
)

// TimestampFormat is the wire format for user timestamps.
const TimestampFormat = "2006-01-02 15:04:05"

type User struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex:users_name_unique;not null"`
	Email     string    `json:"email" gorm:"uniqueIndex:users_email_unique;not null"`
	Password  string    `json:"-" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PublicUser is the client-facing view of a user record. The password hash
// never leaves the server, on any endpoint.
type PublicUser struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Format(TimestampFormat),
		UpdatedAt: u.UpdatedAt.Format(TimestampFormat),
	}
}
