package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/cinelog/cinelog/internal/config"
	"github.com/cinelog/cinelog/internal/pkg/security"
	"github.com/cinelog/cinelog/internal/platform/db"
	"github.com/cinelog/cinelog/internal/platform/email"
	"github.com/cinelog/cinelog/internal/platform/hash"
	"github.com/cinelog/cinelog/internal/platform/jwt"
	"github.com/cinelog/cinelog/internal/user"
)

var _ AuthService = (*Service)(nil)

var (
	ErrDuplicateEmail     = errors.New("auth service: email already in use")
	ErrInvalidUser        = errors.New("auth service: invalid user id")
	ErrAlreadyVerified    = errors.New("auth service: user already verified")
	ErrTokenNotFound      = errors.New("auth service: token not found")
	ErrOTPMismatch        = errors.New("auth service: otp not matched")
	ErrTooSoon            = errors.New("auth service: a live token already exists")
	ErrSamePassword       = errors.New("auth service: new password matches the old one")
	ErrCredentialMismatch = errors.New("auth service: email/password mismatch")
	ErrTokenInvalid       = errors.New("auth service: invalid or expired reset token")
)

// Repository is the persistence surface of the auth module: the one-time
// token store plus the user mutations the flows gate.
type Repository interface {
	IssueToken(ctx context.Context, params IssueTokenParams) (Token, error)
	FindLiveToken(ctx context.Context, userID string, purpose Purpose) (Token, error)
	DeleteToken(ctx context.Context, tokenID string) error
	VerifyUser(ctx context.Context, userID string) error
	ChangeUserPassword(ctx context.Context, userID, passwordHash string) error
}

type Providers struct {
	Hasher hash.Hasher
	Signer jwt.Signer
	Mailer email.Mailer
}

type Service struct {
	repo    Repository
	userSvc user.UserService
	hasher  hash.Hasher
	signer  jwt.Signer
	mailer  email.Mailer
	txMgr   db.TxManager
	cfg     *config.Config
}

func NewService(repo Repository, userSvc user.UserService, providers *Providers, cfg *config.Config, txMgr db.TxManager) *Service {
	return &Service{
		repo:    repo,
		userSvc: userSvc,
		hasher:  providers.Hasher,
		signer:  providers.Signer,
		mailer:  providers.Mailer,
		txMgr:   txMgr,
		cfg:     cfg,
	}
}

type RegisterUserParams struct {
	Name     string
	Email    string
	Password string
}

func (p RegisterUserParams) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", p.Name),
		slog.String("email", maskChar),
		slog.String("password", maskChar),
	)
}

// RegisterUser creates the account and issues its email verification OTP.
// The OTP is stored hashed and mailed in plaintext to the new address.
func (s *Service) RegisterUser(ctx context.Context, params RegisterUserParams) (user.User, error) {
	u := user.User{}
	existing, err := s.userSvc.FindUserByEmail(ctx, params.Email)
	if err != nil && !errors.Is(err, user.ErrNotFound) {
		return u, fmt.Errorf("find user by email: %w", err)
	}

	if existing != nil {
		return u, ErrDuplicateEmail
	}

	passwordHash, err := s.hasher.Hash(params.Password)
	if err != nil {
		return u, fmt.Errorf("hash password: %w", err)
	}

	newUser, err := s.userSvc.CreateUser(ctx, user.CreateUserParams{
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		return u, fmt.Errorf("create user: %w", err)
	}

	if err := s.issueVerifyOTP(ctx, newUser.ID, newUser.Email); err != nil {
		return u, err
	}

	return newUser, nil
}

func (s *Service) issueVerifyOTP(ctx context.Context, userID, emailAddr string) error {
	otp, err := security.GenerateOTP(s.cfg.Token.OTPDigits)
	if err != nil {
		return fmt.Errorf("generate otp: %w", err)
	}

	otpHash, err := s.hasher.Hash(otp)
	if err != nil {
		return fmt.Errorf("hash otp: %w", err)
	}

	_, err = s.repo.IssueToken(ctx, IssueTokenParams{
		UserID:    userID,
		Purpose:   PurposeEmailVerify,
		TokenHash: otpHash,
		ExpiresAt: time.Now().Add(s.cfg.Token.VerifyTTL.Duration),
	})
	if err != nil {
		if errors.Is(err, ErrTooSoon) {
			return ErrTooSoon
		}
		return fmt.Errorf("issue verification token: %w", err)
	}

	go s.sendMail(emailAddr, "Email Verification", "verification", map[string]string{
		"Title":  "Email Verification",
		"Header": "Your verification OTP",
		"OTP":    otp,
	})

	return nil
}

type VerifyEmailParams struct {
	UserID string
	OTP    string
}

func (p VerifyEmailParams) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("user_id", p.UserID),
		slog.String("otp", maskChar),
	)
}

// VerifyEmail consumes the pending OTP: on a successful hash match the user
// is flagged verified and the token deleted in one transaction, so the same
// OTP can never be replayed.
func (s *Service) VerifyEmail(ctx context.Context, params VerifyEmailParams) (user.User, string, error) {
	u := user.User{}
	if err := uuid.Validate(params.UserID); err != nil {
		return u, "", ErrInvalidUser
	}

	found, err := s.userSvc.FindUser(ctx, params.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return u, "", user.ErrNotFound
		}
		return u, "", fmt.Errorf("find user: %w", err)
	}

	if found.IsVerified() {
		return u, "", ErrAlreadyVerified
	}

	token, err := s.repo.FindLiveToken(ctx, params.UserID, PurposeEmailVerify)
	if err != nil {
		if errors.Is(err, ErrTokenNotFound) {
			return u, "", ErrTokenNotFound
		}
		return u, "", fmt.Errorf("find verification token: %w", err)
	}

	matched, err := s.hasher.Verify(params.OTP, token.TokenHash)
	if err != nil {
		return u, "", fmt.Errorf("verify otp: %w", err)
	}
	if !matched {
		return u, "", ErrOTPMismatch
	}

	err = s.txMgr.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.repo.VerifyUser(txCtx, found.ID); err != nil {
			return fmt.Errorf("mark user verified: %w", err)
		}
		if err := s.repo.DeleteToken(txCtx, token.ID); err != nil {
			return fmt.Errorf("delete consumed token: %w", err)
		}
		return nil
	})
	if err != nil {
		return u, "", err
	}

	go s.sendMail(found.Email, "Welcome Email", "welcome", map[string]string{
		"Title":  "Welcome",
		"Header": "Welcome to Cinelog and thanks for choosing us.",
		"Name":   found.Name,
	})

	sessionToken, err := s.signSession(found.ID)
	if err != nil {
		return u, "", err
	}

	now := time.Now()
	found.VerifiedAt = &now
	return *found, sessionToken, nil
}

// ResendVerification issues a fresh OTP unless a live one exists, in which
// case the caller must wait out the cooldown.
func (s *Service) ResendVerification(ctx context.Context, userID string) error {
	if err := uuid.Validate(userID); err != nil {
		return ErrInvalidUser
	}

	found, err := s.userSvc.FindUser(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.ErrNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	if found.IsVerified() {
		return ErrAlreadyVerified
	}

	return s.issueVerifyOTP(ctx, found.ID, found.Email)
}

// ForgotPassword issues a reset token and mails a link embedding the
// plaintext token and the user id as query parameters. The link target is a
// client route, not this backend.
func (s *Service) ForgotPassword(ctx context.Context, emailAddr string) error {
	found, err := s.userSvc.FindUserByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.ErrNotFound
		}
		return fmt.Errorf("find user by email: %w", err)
	}

	plaintext, err := security.GenerateRandomBytesHex(s.cfg.Token.ResetLength)
	if err != nil {
		return fmt.Errorf("generate reset token: %w", err)
	}

	tokenHash, err := s.hasher.Hash(plaintext)
	if err != nil {
		return fmt.Errorf("hash reset token: %w", err)
	}

	_, err = s.repo.IssueToken(ctx, IssueTokenParams{
		UserID:    found.ID,
		Purpose:   PurposePasswordReset,
		TokenHash: tokenHash,
		ExpiresAt: time.Now().Add(s.cfg.Token.ResetTTL.Duration),
	})
	if err != nil {
		if errors.Is(err, ErrTooSoon) {
			return ErrTooSoon
		}
		return fmt.Errorf("issue reset token: %w", err)
	}

	resetURL := s.cfg.Server.ClientURL + "/auth/reset-password?token=" + url.QueryEscape(plaintext) + "&id=" + url.QueryEscape(found.ID)
	go s.sendMail(found.Email, "Reset Password Link", "reset_password", map[string]string{
		"Title":  "Password Reset",
		"Header": "Click here to reset password",
		"Link":   resetURL,
	})

	return nil
}

// CheckResetToken hash-compares a submitted reset token against the live
// record for the user. It is the gate in front of ResetPassword.
func (s *Service) CheckResetToken(ctx context.Context, userID, plaintext string) (Token, error) {
	var t Token
	if err := uuid.Validate(userID); err != nil {
		return t, ErrInvalidUser
	}

	token, err := s.repo.FindLiveToken(ctx, userID, PurposePasswordReset)
	if err != nil {
		if errors.Is(err, ErrTokenNotFound) {
			return t, ErrTokenInvalid
		}
		return t, fmt.Errorf("find reset token: %w", err)
	}

	matched, err := s.hasher.Verify(plaintext, token.TokenHash)
	if err != nil {
		return t, fmt.Errorf("verify reset token: %w", err)
	}
	if !matched {
		return t, ErrTokenInvalid
	}

	return token, nil
}

type ResetPasswordParams struct {
	UserID      string
	TokenID     string
	NewPassword string
}

func (p ResetPasswordParams) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("user_id", p.UserID),
		slog.String("new_password", maskChar),
	)
}

// ResetPassword replaces the password hash and consumes the reset token in
// one transaction. The token must already have been validated by
// CheckResetToken.
func (s *Service) ResetPassword(ctx context.Context, params ResetPasswordParams) error {
	found, err := s.userSvc.FindUser(ctx, params.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.ErrNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	matched, err := s.hasher.Verify(params.NewPassword, found.PasswordHash)
	if err != nil {
		return fmt.Errorf("compare new password: %w", err)
	}
	if matched {
		return ErrSamePassword
	}

	newHash, err := s.hasher.Hash(params.NewPassword)
	if err != nil {
		return fmt.Errorf("hash new password: %w", err)
	}

	err = s.txMgr.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.repo.ChangeUserPassword(txCtx, found.ID, newHash); err != nil {
			return fmt.Errorf("change password: %w", err)
		}
		if err := s.repo.DeleteToken(txCtx, params.TokenID); err != nil {
			return fmt.Errorf("delete consumed token: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	go s.sendMail(found.Email, "Password Reset Successfully", "reset_success", map[string]string{
		"Title":  "Password Reset Successfully",
		"Header": "Now you can use your new password.",
	})

	return nil
}

type SignInParams struct {
	Email    string
	Password string
}

func (p SignInParams) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", maskChar),
		slog.String("password", maskChar),
	)
}

// SignIn returns the same ErrCredentialMismatch for an unknown email and a
// wrong password so callers cannot probe which addresses are registered.
func (s *Service) SignIn(ctx context.Context, params SignInParams) (user.User, string, error) {
	u := user.User{}
	found, err := s.userSvc.FindUserByEmail(ctx, params.Email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return u, "", ErrCredentialMismatch
		}
		return u, "", fmt.Errorf("find user by email: %w", err)
	}

	matched, err := s.hasher.Verify(params.Password, found.PasswordHash)
	if err != nil {
		return u, "", fmt.Errorf("verify password: %w", err)
	}
	if !matched {
		return u, "", ErrCredentialMismatch
	}

	sessionToken, err := s.signSession(found.ID)
	if err != nil {
		return u, "", err
	}

	return *found, sessionToken, nil
}

func (s *Service) signSession(userID string) (string, error) {
	token, err := s.signer.Sign(userID, []string{s.cfg.JWT.Issuer}, s.cfg.JWT.TTL.Duration)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return token, nil
}

func (s *Service) sendMail(to, subject, tmplName string, data map[string]string) {
	if err := s.mailer.SendHTML([]string{to}, subject, tmplName, data); err != nil {
		slog.Error("failed to send email", "subject", subject, "reason", err)
	}
}
