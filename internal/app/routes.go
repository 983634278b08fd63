package app

import (
	"github.com/cinelog/cinelog/internal/auth"
	"github.com/cinelog/cinelog/internal/config"
	"github.com/cinelog/cinelog/internal/middleware"
	"github.com/cinelog/cinelog/internal/platform/jwt"
	"github.com/cinelog/cinelog/internal/platform/router"
	"github.com/cinelog/cinelog/internal/platform/validation"
	"github.com/cinelog/cinelog/internal/review"
	"github.com/cinelog/cinelog/internal/user"
)

func mountAuthRoutes(r router.Router, handler *auth.Handler, svc auth.AuthService, validator validation.Validator, cfg *config.Config) {
	maxBodySize := cfg.Server.MaxBodyBytes

	r.Group("/auth", func(gr router.Router) {
		gr.Post("/register", handler.RegisterUser,
			middleware.DecodePayload[auth.RegisterUserRequest](maxBodySize),
			middleware.ValidateInput[auth.RegisterUserRequest](validator))
		gr.Post("/verify-email", handler.VerifyEmail,
			middleware.DecodePayload[auth.VerifyEmailRequest](maxBodySize),
			middleware.ValidateInput[auth.VerifyEmailRequest](validator))
		gr.Post("/resend-verification", handler.ResendVerification,
			middleware.DecodePayload[auth.ResendVerificationRequest](maxBodySize),
			middleware.ValidateInput[auth.ResendVerificationRequest](validator))
		gr.Post("/forgot-password", handler.ForgotPassword,
			middleware.DecodePayload[auth.ForgotPasswordRequest](maxBodySize),
			middleware.ValidateInput[auth.ForgotPasswordRequest](validator))
		gr.Get("/reset-password-status", handler.ResetTokenStatus,
			auth.VerifyResetToken(svc))
		gr.Post("/reset-password", handler.ResetPassword,
			auth.VerifyResetToken(svc),
			middleware.DecodePayload[auth.ResetPasswordRequest](maxBodySize),
			middleware.ValidateInput[auth.ResetPasswordRequest](validator))
		gr.Post("/sign-in", handler.SignIn,
			middleware.DecodePayload[auth.SignInRequest](maxBodySize),
			middleware.ValidateInput[auth.SignInRequest](validator))
	})
}

func mountUserRoutes(r router.Router, handler *user.Handler, signer jwt.Signer) {
	r.Group("/users", func(gr router.Router) {
		gr.Get("/", handler.ListUsers)
	}, auth.RequireToken(signer))
}

func mountReviewRoutes(r router.Router, handler *review.Handler, signer jwt.Signer, validator validation.Validator, cfg *config.Config) {
	maxBodySize := cfg.Server.MaxBodyBytes

	r.Group("/reviews", func(gr router.Router) {
		gr.Post("/add/{movieId}", handler.AddReview,
			middleware.DecodePayload[review.UpsertReviewRequest](maxBodySize),
			middleware.ValidateInput[review.UpsertReviewRequest](validator))
		gr.Patch("/{reviewId}", handler.UpdateReview,
			middleware.DecodePayload[review.UpsertReviewRequest](maxBodySize),
			middleware.ValidateInput[review.UpsertReviewRequest](validator))
	}, auth.RequireToken(signer))
}
