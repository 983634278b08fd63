package auth

import "time"

// Purpose identifies what a one-time token unlocks. A user holds at most one
// live token per purpose.
type Purpose string

const (
	PurposeEmailVerify   Purpose = "email_verify"
	PurposePasswordReset Purpose = "password_reset"
)

// Token is a one-time secret gating a sensitive state transition. Only the
// argon2 hash of the secret is stored; the plaintext exists once, in the
// email sent to the owner.
type Token struct {
	ID        string
	UserID    string
	Purpose   Purpose
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}
