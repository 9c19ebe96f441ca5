package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"

	adapthttp "github.com/Tarsisbs/Backend-APP-TCC/internal/adapter/http"
	"github.com/Tarsisbs/Backend-APP-TCC/internal/adapter/postgres"
	"github.com/Tarsisbs/Backend-APP-TCC/internal/app"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// defaultJWTSecret keeps parity with the legacy deployment. Any real
// environment must set JWT_SECRET.
const defaultJWTSecret = "tarsisbsaz0911"

func main() {
	addr := ":" + env("PORT", "3000")
	appEnv := env("APP_ENV", "dev")

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = defaultJWTSecret
		log.Printf("JWT_SECRET not set, using insecure built-in fallback; do not run this in production")
	}

	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := postgres.Open(connStr)
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	defer func() { _ = db.Close() }()

	tokens := app.NewTokenCodec(secret)
	authSvc := app.NewAuthService(db, tokens)
	listingSvc := app.NewListingService(db)

	sso, err := ssoFromEnv(context.Background())
	if err != nil {
		log.Fatalf("oidc: %v", err)
	}

	h := adapthttp.New(authSvc, listingSvc, tokens, appEnv, sso).Handler()
	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

// ssoFromEnv builds the optional OIDC configuration. Returns nil when
// OIDC_ISSUER is unset, which disables the SSO routes.
func ssoFromEnv(ctx context.Context) (*adapthttp.SSOConfig, error) {
	issuer := os.Getenv("OIDC_ISSUER")
	if issuer == "" {
		return nil, nil
	}

	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, err
	}

	return &adapthttp.SSOConfig{
		Provider: provider,
		OAuth2: oauth2.Config{
			ClientID:     os.Getenv("OIDC_CLIENT_ID"),
			ClientSecret: os.Getenv("OIDC_CLIENT_SECRET"),
			RedirectURL:  os.Getenv("OIDC_REDIRECT_URL"),
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
		},
		FrontendURL: env("FRONTEND_URL", "/"),
	}, nil
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
