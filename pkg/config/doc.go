// Package config loads typed configuration from the environment.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// optional .env files are read first, without overriding variables already
// set in the process, then the environment is parsed into a struct using
// `env` field tags.
//
// # Usage
//
//	type ServerConfig struct {
//	    Addr string `env:"ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg, config.WithPrefix("ROLLCALL_"), config.WithEnvFiles(".env")); err != nil {
//	    log.Fatalf("loading config: %v", err)
//	}
//
// A missing .env file is not an error. Parse failures wrap ErrParsingConfig.
package config
