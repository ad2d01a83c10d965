package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/rollcall/pkg/config"
	"github.com/dmitrymomot/rollcall/pkg/logger"
	"github.com/dmitrymomot/rollcall/pkg/registry"
	"github.com/dmitrymomot/rollcall/pkg/requestid"
)

const serviceName = "rollcall"

// policyEnvPrefix namespaces the registry policy variables.
const policyEnvPrefix = "ROLLCALL_"

// appConfig holds settings shared by every subcommand.
type appConfig struct {
	Env             string `env:"APP_ENV" envDefault:"development"`
	LogLevel        string `env:"LOG_LEVEL"`
	DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"en"`
	MaxBodyBytes    int64  `env:"MAX_BODY_BYTES" envDefault:"10485760"`

	// RateLimitPerMinute of zero disables throttling.
	RateLimitPerMinute int `env:"RATE_LIMIT_PER_MINUTE" envDefault:"600"`
	RateLimitBurst     int `env:"RATE_LIMIT_BURST" envDefault:"60"`
}

var envFiles []string

var rootCmd = &cobra.Command{
	Use:           serviceName,
	Short:         "Validation and business-rule checks for the attendance console",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", []string{".env"}, "dotenv files read before the environment")
}

// loadConfig reads the shared settings and the rule registry.
func loadConfig() (appConfig, *registry.Registry, error) {
	var app appConfig
	if err := config.Load(&app, config.WithEnvFiles(envFiles...)); err != nil {
		return app, nil, err
	}

	var regCfg registry.Config
	if err := config.Load(&regCfg, config.WithPrefix(policyEnvPrefix)); err != nil {
		return app, nil, err
	}
	reg, err := registry.FromConfig(regCfg)
	if err != nil {
		return app, nil, err
	}
	return app, reg, nil
}

func newLogger(app appConfig) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(logger.ParseEnvironment(app.Env), serviceName),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if app.LogLevel != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(strings.ToUpper(app.LogLevel))); err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", app.LogLevel, err)
		}
		opts = append(opts, logger.WithLevel(level))
	}
	return logger.New(opts...), nil
}
