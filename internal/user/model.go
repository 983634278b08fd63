package user

import (
	"time"

	"github.com/cinelog/cinelog/internal/model"
)

type User struct {
	model.Model

	Name         string
	Email        string
	PasswordHash string
	VerifiedAt   *time.Time
}

// IsVerified reports whether the user completed email verification.
func (u *User) IsVerified() bool {
	return u.VerifiedAt != nil
}
