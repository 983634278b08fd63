package auth

import (
	"context"
	"errors"

	"github.com/cinelog/cinelog/internal/user"
)

type StubService struct {
	RegisterUserFunc       func(ctx context.Context, params RegisterUserParams) (user.User, error)
	VerifyEmailFunc        func(ctx context.Context, params VerifyEmailParams) (user.User, string, error)
	ResendVerificationFunc func(ctx context.Context, userID string) error
	ForgotPasswordFunc     func(ctx context.Context, email string) error
	CheckResetTokenFunc    func(ctx context.Context, userID, plaintext string) (Token, error)
	ResetPasswordFunc      func(ctx context.Context, params ResetPasswordParams) error
	SignInFunc             func(ctx context.Context, params SignInParams) (user.User, string, error)
}

var _ AuthService = (*StubService)(nil)

func (s *StubService) RegisterUser(ctx context.Context, params RegisterUserParams) (user.User, error) {
	if s.RegisterUserFunc == nil {
		return user.User{}, errors.New("RegisterUser not implemented by stub")
	}
	return s.RegisterUserFunc(ctx, params)
}

func (s *StubService) VerifyEmail(ctx context.Context, params VerifyEmailParams) (user.User, string, error) {
	if s.VerifyEmailFunc == nil {
		return user.User{}, "", errors.New("VerifyEmail not implemented by stub")
	}
	return s.VerifyEmailFunc(ctx, params)
}

func (s *StubService) ResendVerification(ctx context.Context, userID string) error {
	if s.ResendVerificationFunc == nil {
		return errors.New("ResendVerification not implemented by stub")
	}
	return s.ResendVerificationFunc(ctx, userID)
}

func (s *StubService) ForgotPassword(ctx context.Context, email string) error {
	if s.ForgotPasswordFunc == nil {
		return errors.New("ForgotPassword not implemented by stub")
	}
	return s.ForgotPasswordFunc(ctx, email)
}

func (s *StubService) CheckResetToken(ctx context.Context, userID, plaintext string) (Token, error) {
	if s.CheckResetTokenFunc == nil {
		return Token{}, errors.New("CheckResetToken not implemented by stub")
	}
	return s.CheckResetTokenFunc(ctx, userID, plaintext)
}

func (s *StubService) ResetPassword(ctx context.Context, params ResetPasswordParams) error {
	if s.ResetPasswordFunc == nil {
		return errors.New("ResetPassword not implemented by stub")
	}
	return s.ResetPasswordFunc(ctx, params)
}

func (s *StubService) SignIn(ctx context.Context, params SignInParams) (user.User, string, error) {
	if s.SignInFunc == nil {
		return user.User{}, "", errors.New("SignIn not implemented by stub")
	}
	return s.SignInFunc(ctx, params)
}

type StubRepo struct {
	IssueTokenFunc         func(ctx context.Context, params IssueTokenParams) (Token, error)
	FindLiveTokenFunc      func(ctx context.Context, userID string, purpose Purpose) (Token, error)
	DeleteTokenFunc        func(ctx context.Context, tokenID string) error
	VerifyUserFunc         func(ctx context.Context, userID string) error
	ChangeUserPasswordFunc func(ctx context.Context, userID, passwordHash string) error
}

var _ Repository = (*StubRepo)(nil)

func (r *StubRepo) IssueToken(ctx context.Context, params IssueTokenParams) (Token, error) {
	if r.IssueTokenFunc == nil {
		return Token{}, errors.New("IssueToken not implemented by stub")
	}
	return r.IssueTokenFunc(ctx, params)
}

func (r *StubRepo) FindLiveToken(ctx context.Context, userID string, purpose Purpose) (Token, error) {
	if r.FindLiveTokenFunc == nil {
		return Token{}, errors.New("FindLiveToken not implemented by stub")
	}
	return r.FindLiveTokenFunc(ctx, userID, purpose)
}

func (r *StubRepo) DeleteToken(ctx context.Context, tokenID string) error {
	if r.DeleteTokenFunc == nil {
		return errors.New("DeleteToken not implemented by stub")
	}
	return r.DeleteTokenFunc(ctx, tokenID)
}

func (r *StubRepo) VerifyUser(ctx context.Context, userID string) error {
	if r.VerifyUserFunc == nil {
		return errors.New("VerifyUser not implemented by stub")
	}
	return r.VerifyUserFunc(ctx, userID)
}

func (r *StubRepo) ChangeUserPassword(ctx context.Context, userID, passwordHash string) error {
	if r.ChangeUserPasswordFunc == nil {
		return errors.New("ChangeUserPassword not implemented by stub")
	}
	return r.ChangeUserPasswordFunc(ctx, userID, passwordHash)
}
