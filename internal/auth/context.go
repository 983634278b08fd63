package auth

import (
	"context"
	"fmt"
)

type ctxKey int

const (
	userCtxKey ctxKey = iota + 1
	resetTokenCtxKey
)

// ContextWithUser returns a new context containing the authenticated user's ID.
//
//nolint:ireturn //Returning context.Context is intentional: it's the standard context type.
func ContextWithUser(baseCtx context.Context, userID string) context.Context {
	return context.WithValue(baseCtx, userCtxKey, userID)
}

// UserFromContext extracts the user ID from the context.
// It returns an error if the user ID is missing or not a string.
func UserFromContext(ctx context.Context) (string, error) {
	val := ctx.Value(userCtxKey)

	if val == nil {
		return "", fmt.Errorf("no user ID in context")
	}

	userID, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("user ID is not a string: %T", val)
	}

	return userID, nil
}

// ContextWithResetToken stores the reset token resolved by the
// VerifyResetToken gate for the reset-password handler to consume.
//
//nolint:ireturn //Returning context.Context is intentional: it's the standard context type.
func ContextWithResetToken(baseCtx context.Context, token Token) context.Context {
	return context.WithValue(baseCtx, resetTokenCtxKey, token)
}

// ResetTokenFromContext extracts the validated reset token from the context.
func ResetTokenFromContext(ctx context.Context) (Token, error) {
	token, ok := ctx.Value(resetTokenCtxKey).(Token)
	if !ok {
		return Token{}, fmt.Errorf("no reset token in context")
	}
	return token, nil
}
