package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"colectivo/internal/cache"
	intconfig "colectivo/internal/config"
	"colectivo/internal/db"
	router "colectivo/internal/http"
	"colectivo/internal/http/handlers"
	"colectivo/internal/metrics"
	"colectivo/internal/repositories"
	"colectivo/internal/services"
	"colectivo/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "colectivo",
		Usage: "transport booking backend",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP API",
				Action: serve,
			},
			{
				Name:   "seed",
				Usage:  "load the starting destination catalog and admin user",
				Action: seed,
			},
		},
		Action: serve,
	}

	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("colectivo exited")
	}
}

// bootstrap loads config, configures logging and opens a migrated pool.
func bootstrap(ctx context.Context) (intconfig.Env, *sqlx.DB, error) {
	env, err := intconfig.LoadEnv()
	if err != nil {
		return env, nil, err
	}
	utils.ConfigureLogger(env.LogLevel, env.Production())

	conn, err := intconfig.ConnectDB(ctx, env.DatabaseDSN)
	if err != nil {
		return env, nil, err
	}
	if err := db.EnsureSchema(ctx, conn); err != nil {
		_ = conn.Close()
		return env, nil, fmt.Errorf("ensure schema: %w", err)
	}
	log.Info("database connected")
	return env, conn, nil
}

func catalogCache(env intconfig.Env, source repositories.CatalogRepository) cache.ActiveServices {
	c := cache.ActiveServices{Source: source, TTL: env.CacheTTL}
	if env.RedisAddr != "" {
		c.Store = cache.RedisStore{Client: cache.NewRedis(env.RedisAddr)}
		log.WithField("addr", env.RedisAddr).Info("catalog cache enabled")
	}
	return c
}

func serve(cctx *cli.Context) error {
	env, conn, err := bootstrap(cctx.Context)
	if err != nil {
		return err
	}
	defer conn.Close()

	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	} else if env.Production() {
		gin.SetMode(gin.ReleaseMode)
	}
	if env.IntakeKey == "" {
		log.Warn("INTAKE_API_KEY is empty; intake route will reject every request")
	}

	catalog := repositories.CatalogRepository{DB: conn}
	cached := catalogCache(env, catalog)

	hd := &handlers.Handler{
		Catalog:       catalog,
		Quotes:        cached,
		Cache:         cached,
		Orders:        repositories.OrderRepository{DB: conn},
		Users:         repositories.UserRepository{DB: conn},
		Metrics:       metrics.NewRegistry(),
		DB:            conn,
		JWTSecret:     []byte(env.JWTSecret),
		JWTTTL:        env.JWTTTL,
		AdminUser:     env.AdminUser,
		AdminPassword: env.AdminPass,
	}

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           router.NewRouter(env, hd),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", env.AppAddr).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-quit:
	}

	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("server stopped")
	return nil
}

func seed(cctx *cli.Context) error {
	env, conn, err := bootstrap(cctx.Context)
	if err != nil {
		return err
	}
	defer conn.Close()

	catalog := repositories.CatalogRepository{DB: conn}
	report, err := services.SeedService{
		Catalog:       catalog,
		Users:         repositories.UserRepository{DB: conn},
		Cache:         catalogCache(env, catalog),
		AdminUser:     env.AdminUser,
		AdminPassword: env.AdminPass,
		RequestID:     "seed-cli",
	}.Run(cctx.Context)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"services_created": report.ServicesCreated,
		"prices_created":   report.PricesCreated,
		"admin_created":    report.AdminCreated,
	}).Info("seed complete")
	return nil
}
