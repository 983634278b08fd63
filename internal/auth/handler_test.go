package auth_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/cinelog/cinelog/internal/auth"
	"github.com/cinelog/cinelog/internal/model"
	"github.com/cinelog/cinelog/internal/pkg/message"
	"github.com/cinelog/cinelog/internal/pkg/web"
	"github.com/cinelog/cinelog/internal/user"
)

func TestHandler_RegisterUser(t *testing.T) {
	t.Parallel()

	now := time.Now().Truncate(0)

	tests := []struct {
		name        string
		params      auth.RegisterUserRequest
		regUserFunc func(ctx context.Context, params auth.RegisterUserParams) (user.User, error)
		code        int
		user        *auth.RegisterUserResponse
	}{
		{"Successful registration",
			auth.RegisterUserRequest{Name: "Test User", Email: testEmail, Password: "secret123"},
			func(ctx context.Context, params auth.RegisterUserParams) (user.User, error) {
				return user.User{
					Model: model.Model{
						ID:        testUserID,
						CreatedAt: now,
						UpdatedAt: now,
					},
					Name:  "Test User",
					Email: testEmail,
				}, nil
			},
			http.StatusCreated,
			&auth.RegisterUserResponse{
				ID:    testUserID,
				Name:  "Test User",
				Email: testEmail,
			},
		},
		{"Email already in use",
			auth.RegisterUserRequest{Name: "Test User", Email: testEmail, Password: "secret123"},
			func(ctx context.Context, params auth.RegisterUserParams) (user.User, error) {
				return user.User{}, auth.ErrDuplicateEmail
			},
			http.StatusConflict,
			nil,
		},
		{"Registration failed due to a database error",
			auth.RegisterUserRequest{Name: "Test User", Email: testEmail, Password: "secret123"},
			func(ctx context.Context, params auth.RegisterUserParams) (user.User, error) {
				return user.User{}, errors.New("query failed")
			},
			http.StatusInternalServerError,
			nil,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := &auth.StubService{RegisterUserFunc: tc.regUserFunc}
			authHandler := auth.NewHandler(svc)

			paramsCtx := web.NewContextWithParams(context.Background(), tc.params)
			req := httptest.NewRequestWithContext(paramsCtx, http.MethodPost, "/auth/register", http.NoBody)
			rec := httptest.NewRecorder()
			authHandler.RegisterUser(rec, req)

			gotCode, wantCode := rec.Code, tc.code
			if gotCode != wantCode {
				t.Errorf(message.FmtErrStatusCode, gotCode, wantCode)
			}

			gotHeader := rec.Header().Get(web.HeaderContentType)
			wantHeader := web.MimeJSON
			if gotHeader != wantHeader {
				t.Errorf("rec.Header().Get(%q) = %q, want: %q", web.HeaderContentType, gotHeader, wantHeader)
			}

			if tc.user != nil {
				var apiRes web.OKResponse[*auth.RegisterUserResponse]
				if err := json.NewDecoder(rec.Body).Decode(&apiRes); err != nil {
					t.Fatal(err)
				}

				gotUser, wantUser := apiRes.Data, tc.user
				if !reflect.DeepEqual(gotUser, wantUser) {
					t.Errorf("apiRes.Data = %+v, want: %+v", gotUser, wantUser)
				}
			}
		})
	}
}

func TestHandler_VerifyEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		verifyFunc func(ctx context.Context, params auth.VerifyEmailParams) (user.User, string, error)
		code       int
		wantToken  string
	}{
		{
			name: "Email verified successfully",
			verifyFunc: func(ctx context.Context, params auth.VerifyEmailParams) (user.User, string, error) {
				now := time.Now()
				return user.User{
					Model: model.Model{ID: testUserID},
					Name:  "Test User",
					Email: testEmail,
					VerifiedAt: &now,
				}, "session_token", nil
			},
			code:      http.StatusOK,
			wantToken: "session_token",
		},
		{
			name: "User does not exist",
			verifyFunc: func(ctx context.Context, params auth.VerifyEmailParams) (user.User, string, error) {
				return user.User{}, "", user.ErrNotFound
			},
			code: http.StatusNotFound,
		},
		{
			name: "Wrong OTP",
			verifyFunc: func(ctx context.Context, params auth.VerifyEmailParams) (user.User, string, error) {
				return user.User{}, "", auth.ErrOTPMismatch
			},
			code: http.StatusBadRequest,
		},
		{
			name: "No live token",
			verifyFunc: func(ctx context.Context, params auth.VerifyEmailParams) (user.User, string, error) {
				return user.User{}, "", auth.ErrTokenNotFound
			},
			code: http.StatusNotFound,
		},
		{
			name: "Already verified",
			verifyFunc: func(ctx context.Context, params auth.VerifyEmailParams) (user.User, string, error) {
				return user.User{}, "", auth.ErrAlreadyVerified
			},
			code: http.StatusBadRequest,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := &auth.StubService{VerifyEmailFunc: tc.verifyFunc}
			authHandler := auth.NewHandler(svc)

			params := auth.VerifyEmailRequest{UserID: testUserID, OTP: "123456"}
			paramsCtx := web.NewContextWithParams(context.Background(), params)
			req := httptest.NewRequestWithContext(paramsCtx, http.MethodPost, "/auth/verify-email", http.NoBody)
			rec := httptest.NewRecorder()
			authHandler.VerifyEmail(rec, req)

			gotCode, wantCode := rec.Code, tc.code
			if gotCode != wantCode {
				t.Errorf(message.FmtErrStatusCode, gotCode, wantCode)
			}

			if tc.wantToken != "" {
				var apiRes web.OKResponse[*auth.SessionUserResponse]
				if err := json.NewDecoder(rec.Body).Decode(&apiRes); err != nil {
					t.Fatal(err)
				}

				if apiRes.Data.Token != tc.wantToken {
					t.Errorf("apiRes.Data.Token = %q, want: %q", apiRes.Data.Token, tc.wantToken)
				}
				if !apiRes.Data.IsVerified {
					t.Error("apiRes.Data.IsVerified = false, want: true")
				}
			}
		})
	}
}

func TestHandler_ResendVerification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		resendFunc func(ctx context.Context, userID string) error
		code       int
	}{
		{
			name: "New OTP sent",
			resendFunc: func(ctx context.Context, userID string) error {
				return nil
			},
			code: http.StatusOK,
		},
		{
			name: "Cooldown still active",
			resendFunc: func(ctx context.Context, userID string) error {
				return auth.ErrTooSoon
			},
			code: http.StatusBadRequest,
		},
		{
			name: "User does not exist",
			resendFunc: func(ctx context.Context, userID string) error {
				return user.ErrNotFound
			},
			code: http.StatusNotFound,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := &auth.StubService{ResendVerificationFunc: tc.resendFunc}
			authHandler := auth.NewHandler(svc)

			params := auth.ResendVerificationRequest{UserID: testUserID}
			paramsCtx := web.NewContextWithParams(context.Background(), params)
			req := httptest.NewRequestWithContext(paramsCtx, http.MethodPost, "/auth/resend-verification", http.NoBody)
			rec := httptest.NewRecorder()
			authHandler.ResendVerification(rec, req)

			gotCode, wantCode := rec.Code, tc.code
			if gotCode != wantCode {
				t.Errorf(message.FmtErrStatusCode, gotCode, wantCode)
			}
		})
	}
}

func TestHandler_ForgotPassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		forgotFunc func(ctx context.Context, email string) error
		code       int
	}{
		{
			name: "Reset link sent",
			forgotFunc: func(ctx context.Context, email string) error {
				return nil
			},
			code: http.StatusOK,
		},
		{
			name: "Unknown email",
			forgotFunc: func(ctx context.Context, email string) error {
				return user.ErrNotFound
			},
			code: http.StatusNotFound,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := &auth.StubService{ForgotPasswordFunc: tc.forgotFunc}
			authHandler := auth.NewHandler(svc)

			params := auth.ForgotPasswordRequest{Email: testEmail}
			paramsCtx := web.NewContextWithParams(context.Background(), params)
			req := httptest.NewRequestWithContext(paramsCtx, http.MethodPost, "/auth/forgot-password", http.NoBody)
			rec := httptest.NewRecorder()
			authHandler.ForgotPassword(rec, req)

			gotCode, wantCode := rec.Code, tc.code
			if gotCode != wantCode {
				t.Errorf(message.FmtErrStatusCode, gotCode, wantCode)
			}
		})
	}
}

func TestHandler_ResetTokenStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctx  context.Context
		code int
	}{
		{
			name: "Gate attached a valid token",
			ctx:  auth.ContextWithResetToken(context.Background(), auth.Token{ID: testTokenID, UserID: testUserID}),
			code: http.StatusOK,
		},
		{
			name: "No token in context",
			ctx:  context.Background(),
			code: http.StatusUnauthorized,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			authHandler := auth.NewHandler(&auth.StubService{})
			req := httptest.NewRequestWithContext(tc.ctx, http.MethodGet, "/auth/reset-password-status", http.NoBody)
			rec := httptest.NewRecorder()
			authHandler.ResetTokenStatus(rec, req)

			gotCode, wantCode := rec.Code, tc.code
			if gotCode != wantCode {
				t.Errorf(message.FmtErrStatusCode, gotCode, wantCode)
			}

			if tc.code == http.StatusOK {
				var apiRes web.OKResponse[*auth.ResetTokenStatusResponse]
				if err := json.NewDecoder(rec.Body).Decode(&apiRes); err != nil {
					t.Fatal(err)
				}
				if !apiRes.Data.Valid {
					t.Error("apiRes.Data.Valid = false, want: true")
				}
			}
		})
	}
}

func TestHandler_ResetPassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		ctx       context.Context
		resetFunc func(ctx context.Context, params auth.ResetPasswordParams) error
		code      int
	}{
		{
			name: "Password was reset successfully",
			ctx:  auth.ContextWithResetToken(context.Background(), auth.Token{ID: testTokenID, UserID: testUserID}),
			resetFunc: func(ctx context.Context, params auth.ResetPasswordParams) error {
				if params.UserID != testUserID || params.TokenID != testTokenID {
					return errors.New("token identity not propagated")
				}
				return nil
			},
			code: http.StatusOK,
		},
		{
			name: "New password matches the old one",
			ctx:  auth.ContextWithResetToken(context.Background(), auth.Token{ID: testTokenID, UserID: testUserID}),
			resetFunc: func(ctx context.Context, params auth.ResetPasswordParams) error {
				return auth.ErrSamePassword
			},
			code: http.StatusBadRequest,
		},
		{
			name: "No token in context",
			ctx:  context.Background(),
			code: http.StatusUnauthorized,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := &auth.StubService{ResetPasswordFunc: tc.resetFunc}
			authHandler := auth.NewHandler(svc)

			params := auth.ResetPasswordRequest{NewPassword: "brandnewpass"}
			paramsCtx := web.NewContextWithParams(tc.ctx, params)
			req := httptest.NewRequestWithContext(paramsCtx, http.MethodPost, "/auth/reset-password", http.NoBody)
			rec := httptest.NewRecorder()
			authHandler.ResetPassword(rec, req)

			gotCode, wantCode := rec.Code, tc.code
			if gotCode != wantCode {
				t.Errorf(message.FmtErrStatusCode, gotCode, wantCode)
			}
		})
	}
}

func TestHandler_SignIn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		signInFunc func(ctx context.Context, params auth.SignInParams) (user.User, string, error)
		code       int
	}{
		{
			name: "Correct credentials",
			signInFunc: func(ctx context.Context, params auth.SignInParams) (user.User, string, error) {
				now := time.Now()
				return user.User{
					Model: model.Model{ID: testUserID},
					Name:  "Test User",
					Email: testEmail,
					VerifiedAt: &now,
				}, "session_token", nil
			},
			code: http.StatusOK,
		},
		{
			name: "Email/Password mismatch",
			signInFunc: func(ctx context.Context, params auth.SignInParams) (user.User, string, error) {
				return user.User{}, "", auth.ErrCredentialMismatch
			},
			code: http.StatusUnauthorized,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := &auth.StubService{SignInFunc: tc.signInFunc}
			authHandler := auth.NewHandler(svc)

			params := auth.SignInRequest{Email: testEmail, Password: "secret123"}
			paramsCtx := web.NewContextWithParams(context.Background(), params)
			req := httptest.NewRequestWithContext(paramsCtx, http.MethodPost, "/auth/sign-in", http.NoBody)
			rec := httptest.NewRecorder()
			authHandler.SignIn(rec, req)

			gotCode, wantCode := rec.Code, tc.code
			if gotCode != wantCode {
				t.Errorf(message.FmtErrStatusCode, gotCode, wantCode)
			}
		})
	}
}
