package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/rollcall/handler"
	"github.com/dmitrymomot/rollcall/pkg/config"
	"github.com/dmitrymomot/rollcall/pkg/httpserver"
	"github.com/dmitrymomot/rollcall/pkg/i18n"
	"github.com/dmitrymomot/rollcall/pkg/logger"
	"github.com/dmitrymomot/rollcall/pkg/ratelimit"
	"github.com/dmitrymomot/rollcall/pkg/rbac"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the validation API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context) error {
	app, reg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := newLogger(app)
	if err != nil {
		return err
	}
	logger.SetAsDefault(log)

	var srvCfg httpserver.Config
	if err := config.Load(&srvCfg); err != nil {
		return err
	}

	tr, err := i18n.New(ctx,
		i18n.WithDefaultLanguage(app.DefaultLanguage),
		i18n.WithLogger(log),
	)
	if err != nil {
		return err
	}

	authz, err := rbac.NewAuthorizer(rbac.ConsoleRoles())
	if err != nil {
		return err
	}

	apiOpts := []handler.Option{
		handler.WithLogger(log),
		handler.WithTranslator(tr),
		handler.WithMaxBodyBytes(app.MaxBodyBytes),
	}
	if app.RateLimitPerMinute > 0 {
		limiter, err := ratelimit.NewTokenBucket(app.RateLimitPerMinute, time.Minute,
			ratelimit.WithBurst(app.RateLimitBurst))
		if err != nil {
			return err
		}
		limiter.StartPruning(ctx, 5*time.Minute)
		apiOpts = append(apiOpts, handler.WithRateLimit(limiter))
	}

	api, err := handler.NewAPI(reg, authz, apiOpts...)
	if err != nil {
		return err
	}

	log.InfoContext(ctx, "starting rollcall",
		slog.String("addr", srvCfg.Addr),
		slog.String("timezone", reg.Location().String()),
		slog.String("default_language", app.DefaultLanguage),
	)

	server := httpserver.NewFromConfig(srvCfg, httpserver.WithLogger(log))
	return server.Run(ctx, api.Routes())
}
