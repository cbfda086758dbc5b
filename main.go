package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travelbook/internal/auth"
	intconfig "travelbook/internal/config"
	router "travelbook/internal/http"
	"travelbook/internal/http/handlers"
	"travelbook/internal/logging"
	"travelbook/internal/repositories"

	"github.com/gin-gonic/gin"
)

func main() {
	env, err := intconfig.LoadEnv()
	if err != nil {
		logging.Fatal().Err(err).Msg("invalid configuration")
	}
	logging.Init(logging.Config{Level: env.Logging.Level, Format: env.Logging.Format})
	if env.Server.GinMode != "" {
		gin.SetMode(env.Server.GinMode)
	}

	db, err := intconfig.ConnectDB(env.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("database connection failed")
	}
	defer intconfig.CloseDB()

	revoker, closeRevoker := newRevoker(env.Redis)
	defer closeRevoker()

	tokens, err := auth.NewTokenService(auth.TokenConfig{
		Secret:     []byte(env.Auth.JWTSecret),
		Issuer:     env.Auth.Issuer,
		AccessTTL:  env.Auth.AccessTokenTTL,
		RefreshTTL: env.Auth.RefreshTokenTTL,
	}, repositories.UserRepository{DB: db}, revoker)
	if err != nil {
		logging.Fatal().Err(err).Msg("token service setup failed")
	}

	hs := handlers.New(db, tokens, auth.CookieOptions{
		Domain: env.Auth.CookieDomain,
		Secure: env.Auth.CookieSecure,
	})
	r := router.NewRouter(env.Server, hs)

	srv := &http.Server{
		Addr:              env.Server.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logging.Info().Str("addr", env.Server.AppAddr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logging.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Error().Err(err).Msg("server shutdown failed")
		return
	}
	logging.Info().Msg("server stopped")
}

// newRevoker uses Redis when configured so logouts hold across instances.
// Falls back to memory if Redis is unreachable at startup.
func newRevoker(cfg intconfig.RedisConfig) (auth.Revoker, func()) {
	if cfg.Addr == "" {
		return auth.NewMemoryRevoker(), func() {}
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := auth.NewRedisClient(ctx, auth.RedisOptions{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err != nil {
		logging.Warn().Err(err).Msg("redis unavailable, token revocation kept in memory")
		return auth.NewMemoryRevoker(), func() {}
	}
	return auth.NewRedisRevoker(client), func() { _ = client.Close() }
}
