package app

import (
	"database/sql"
	"fmt"

	"github.com/cinelog/cinelog/internal/config"
	"github.com/cinelog/cinelog/internal/platform/db"
	"github.com/cinelog/cinelog/internal/platform/email"
	"github.com/cinelog/cinelog/internal/platform/hash"
	"github.com/cinelog/cinelog/internal/platform/jwt"
	"github.com/cinelog/cinelog/internal/platform/router"
	"github.com/cinelog/cinelog/internal/platform/validation"
)

// Provider bundles the platform services the modules are wired with.
type Provider struct {
	DB        *sql.DB
	Signer    jwt.Signer
	Mailer    email.Mailer
	Validator validation.Validator
	Hasher    hash.Hasher
	Router    router.Router
	TxMgr     db.TxManager
}

func newProvider(cfg *config.Config, securityKey string, dbConn *sql.DB) (*Provider, error) {
	signer := jwt.NewGolangJWTSigner(cfg.JWT, securityKey)

	smtpCfg, err := email.NewSMTPConfig()
	if err != nil {
		return nil, err
	}
	mailer, err := email.NewSMTPMailer(smtpCfg, cfg.Email)
	if err != nil {
		return nil, fmt.Errorf("new smtp mailer: %w", err)
	}

	hasher := hash.NewArgon2Hasher(cfg.Argon2, securityKey)
	appRouter := router.NewGoexpressRouter()
	validator := validation.NewGoPlaygroundValidator()
	txMgr := db.NewSQLTxManager(dbConn)

	provider := &Provider{
		DB:        dbConn,
		Signer:    signer,
		Hasher:    hasher,
		Mailer:    mailer,
		Router:    appRouter,
		Validator: validator,
		TxMgr:     txMgr,
	}

	return provider, nil
}
