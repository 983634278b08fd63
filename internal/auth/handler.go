package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/cinelog/cinelog/internal/pkg/message"
	"github.com/cinelog/cinelog/internal/pkg/web"
	"github.com/cinelog/cinelog/internal/user"
)

const maskChar = "*"

type AuthService interface {
	RegisterUser(ctx context.Context, params RegisterUserParams) (user.User, error)
	VerifyEmail(ctx context.Context, params VerifyEmailParams) (user.User, string, error)
	ResendVerification(ctx context.Context, userID string) error
	ForgotPassword(ctx context.Context, email string) error
	CheckResetToken(ctx context.Context, userID, plaintext string) (Token, error)
	ResetPassword(ctx context.Context, params ResetPasswordParams) error
	SignIn(ctx context.Context, params SignInParams) (user.User, string, error)
}

type Handler struct {
	svc AuthService
}

func NewHandler(svc AuthService) *Handler {
	return &Handler{svc: svc}
}

type RegisterUserRequest struct {
	Name     string `json:"name,omitempty" validate:"required,max=100"`
	Email    string `json:"email,omitempty" validate:"required,email"`
	Password string `json:"password,omitempty" validate:"required,min=8"`
}

func (r RegisterUserRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", r.Name),
		slog.String("email", maskChar),
		slog.String("password", maskChar),
	)
}

type RegisterUserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[RegisterUserRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	params := RegisterUserParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}
	newUser, err := h.svc.RegisterUser(r.Context(), params)
	if err != nil {
		respondAuthError(w, err)
		return
	}

	msg := MsgRegistered
	web.RespondCreated(w, &msg, &RegisterUserResponse{
		ID:    newUser.ID,
		Name:  newUser.Name,
		Email: newUser.Email,
	})
}

type VerifyEmailRequest struct {
	UserID string `json:"user_id,omitempty" validate:"required,uuid"`
	OTP    string `json:"otp,omitempty" validate:"required,numeric"`
}

func (r VerifyEmailRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("user_id", r.UserID),
		slog.String("otp", maskChar),
	)
}

// SessionUserResponse is the user payload returned by flows that issue a
// session token.
type SessionUserResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	IsVerified bool   `json:"is_verified"`
	Token      string `json:"token"`
}

func (h *Handler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[VerifyEmailRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	verified, sessionToken, err := h.svc.VerifyEmail(r.Context(), VerifyEmailParams{
		UserID: req.UserID,
		OTP:    req.OTP,
	})
	if err != nil {
		respondAuthError(w, err)
		return
	}

	msg := MsgVerified
	web.RespondOK(w, &msg, &SessionUserResponse{
		ID:         verified.ID,
		Name:       verified.Name,
		Email:      verified.Email,
		IsVerified: verified.IsVerified(),
		Token:      sessionToken,
	})
}

type ResendVerificationRequest struct {
	UserID string `json:"user_id,omitempty" validate:"required,uuid"`
}

func (h *Handler) ResendVerification(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[ResendVerificationRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	if err := h.svc.ResendVerification(r.Context(), req.UserID); err != nil {
		respondAuthError(w, err)
		return
	}

	msg := MsgOTPResent
	web.RespondOK(w, &msg, struct{}{})
}

type ForgotPasswordRequest struct {
	Email string `json:"email,omitempty" validate:"required,email"`
}

func (r ForgotPasswordRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", maskChar),
	)
}

func (h *Handler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[ForgotPasswordRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	if err := h.svc.ForgotPassword(r.Context(), req.Email); err != nil {
		respondAuthError(w, err)
		return
	}

	msg := MsgResetLinkSent
	web.RespondOK(w, &msg, struct{}{})
}

type ResetTokenStatusResponse struct {
	Valid bool `json:"valid"`
}

// ResetTokenStatus reports that the reset token passed the VerifyResetToken
// gate. An invalid token never reaches this handler.
func (h *Handler) ResetTokenStatus(w http.ResponseWriter, r *http.Request) {
	if _, err := ResetTokenFromContext(r.Context()); err != nil {
		web.RespondUnauthorized(w, err, message.InvalidToken, nil)
		return
	}

	web.RespondOK(w, nil, &ResetTokenStatusResponse{Valid: true})
}

type ResetPasswordRequest struct {
	NewPassword string `json:"new_password,omitempty" validate:"required,min=8"`
}

func (r ResetPasswordRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("new_password", maskChar),
	)
}

func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	token, err := ResetTokenFromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.InvalidToken, nil)
		return
	}

	req, err := web.ParamsFromContext[ResetPasswordRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	params := ResetPasswordParams{
		UserID:      token.UserID,
		TokenID:     token.ID,
		NewPassword: req.NewPassword,
	}
	if err := h.svc.ResetPassword(r.Context(), params); err != nil {
		respondAuthError(w, err)
		return
	}

	msg := MsgPasswordReset
	web.RespondOK(w, &msg, struct{}{})
}

type SignInRequest struct {
	Email    string `json:"email,omitempty" validate:"required,email"`
	Password string `json:"password,omitempty" validate:"required"`
}

func (r SignInRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", maskChar),
		slog.String("password", maskChar),
	)
}

func (h *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[SignInRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	signedIn, sessionToken, err := h.svc.SignIn(r.Context(), SignInParams{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondAuthError(w, err)
		return
	}

	web.RespondOK(w, nil, &SessionUserResponse{
		ID:         signedIn.ID,
		Name:       signedIn.Name,
		Email:      signedIn.Email,
		IsVerified: signedIn.IsVerified(),
		Token:      sessionToken,
	})
}

// respondAuthError maps service errors to the uniform error envelope.
// Defaults to 400; a duplicate email is 409, missing records are 404 and
// credential or token failures are 401.
func respondAuthError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrDuplicateEmail):
		web.RespondConflict(w, err, MsgDuplicateEmail, nil)
	case errors.Is(err, ErrInvalidUser):
		web.RespondBadRequest(w, err, MsgInvalidUser, nil)
	case errors.Is(err, user.ErrNotFound):
		web.RespondNotFound(w, err, MsgUserNotFound, nil)
	case errors.Is(err, ErrAlreadyVerified):
		web.RespondBadRequest(w, err, MsgVerifiedBefore, nil)
	case errors.Is(err, ErrTokenNotFound):
		web.RespondNotFound(w, err, MsgTokenNotFound, nil)
	case errors.Is(err, ErrOTPMismatch):
		web.RespondBadRequest(w, err, MsgOTPMismatch, nil)
	case errors.Is(err, ErrTooSoon):
		web.RespondBadRequest(w, err, MsgTooSoon, nil)
	case errors.Is(err, ErrSamePassword):
		web.RespondBadRequest(w, err, MsgSamePassword, nil)
	case errors.Is(err, ErrCredentialMismatch):
		web.RespondUnauthorized(w, err, MsgBadCredentials, nil)
	case errors.Is(err, ErrTokenInvalid):
		web.RespondUnauthorized(w, err, message.InvalidToken, nil)
	default:
		web.RespondInternalServerError(w, err)
	}
}
