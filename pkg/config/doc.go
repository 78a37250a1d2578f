// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for parsing tagged structs. Parsed values are
// cached per Go type, so repeated Load calls for the same struct type are cheap
// and see the same values for the lifetime of the process.
//
// # Usage
//
//	type Config struct {
//	    Env      string `env:"APP_ENV" envDefault:"development"`
//	    LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// # Errors
//
// ErrParsingConfig, ErrLoadingEnvFile and ErrNilPointer can be matched with errors.Is.
//
// # Testing
//
// Call ResetCache after changing the environment to force the next Load to re-parse.
package config
