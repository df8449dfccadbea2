package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"neoauth/internal/config"
	"neoauth/internal/notify"
	"neoauth/internal/observability/logging"
	"neoauth/internal/observability/metrics"
	impl "neoauth/internal/service/impl"
	"neoauth/internal/store"
	httpx "neoauth/internal/transport/http"
	"neoauth/pkg/db"
)

func main() {
	// Missing .env is fine in containerized deploys.
	_ = godotenv.Load()

	cfg := config.Load()

	logger := logging.NewLogger(logging.Config{
		ServiceName: "auth",
		Environment: cfg.Environment,
		Level:       cfg.LogLevel,
	})
	slog.SetDefault(logger)

	logger.Info("starting service")

	gdb, err := db.OpenGorm(cfg.DatabaseURL)
	if err != nil {
		logger.Error("gorm open", "error", err)
		os.Exit(1)
	}
	if err := store.Migrate(gdb); err != nil {
		logger.Error("migrate", "error", err)
		os.Exit(1)
	}

	st := store.New(gdb)

	var notifier notify.Sender = notify.ConsoleSender{}
	if cfg.SMTPHost != "" {
		notifier = notify.NewSMTPSender(notify.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
		})
	}

	pw := impl.NewPasswordServiceArgon2id()
	ts := impl.NewTokenServiceHS256(impl.TokenConfig{
		SessionTTL: cfg.SessionTTL,
		SigningKey: []byte(cfg.SigningKey),
	})
	as := impl.NewAuthServiceImpl(st, pw, ts, notifier, impl.AuthConfig{
		ResetTokenTTL: cfg.ResetTokenTTL,
		AppURL:        cfg.AppURL,
	})
	tf := impl.NewTwoFactorServiceImpl(st, impl.TwoFactorConfig{
		CodeTTL: cfg.TwoFactorCodeTTL,
	})
	ad := impl.NewAdminServiceImpl(st)
	oa := impl.NewOAuthServiceImpl(impl.OAuthConfig{
		GoogleClientID:     cfg.GoogleClientID,
		GoogleClientSecret: cfg.GoogleClientSecret,
		GitHubClientID:     cfg.GitHubClientID,
		GitHubClientSecret: cfg.GitHubClientSecret,
	}, st, ts)

	metrics.MustRegister("auth")

	h := httpx.NewHandler(as, tf, ad, oa)
	gate := httpx.NewAuthGate(ts, st.Users())
	router := httpx.NewRouter(h, gate, httpx.RouterConfig{
		CORSOrigins: cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("auth service listening", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
