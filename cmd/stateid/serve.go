package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/stateid/modules/verify"
	"github.com/dmitrymomot/stateid/pkg/clientip"
	"github.com/dmitrymomot/stateid/pkg/config"
	"github.com/dmitrymomot/stateid/pkg/httpserver"
	"github.com/dmitrymomot/stateid/pkg/logger"
	"github.com/dmitrymomot/stateid/pkg/ratelimiter"
	"github.com/dmitrymomot/stateid/pkg/requestid"
)

type appConfig struct {
	Env       string `env:"APP_ENV" envDefault:"development"`
	Name      string `env:"APP_NAME" envDefault:"stateid"`
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`

	RateLimitEnabled bool `env:"RATE_LIMIT_ENABLED" envDefault:"true"`

	HTTP      httpserver.Config
	RateLimit ratelimiter.Config
}

func (c appConfig) loggerOptions(w io.Writer) ([]logger.Option, error) {
	opts := []logger.Option{
		logger.WithOutput(w),
		logger.WithEnvironment(c.Env, c.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	}
	if c.LogLevel != "" {
		opts = append(opts, logger.WithLevelName(c.LogLevel))
	}
	switch f := logger.Format(c.LogFormat); f {
	case "":
	case logger.FormatJSON, logger.FormatText:
		opts = append(opts, logger.WithFormat(f))
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q: must be %q or %q", c.LogFormat, logger.FormatJSON, logger.FormatText)
	}
	return opts, nil
}

// newRouter builds the service handler. A nil limiter disables rate limiting.
func newRouter(log *slog.Logger, limiter *ratelimiter.Limiter) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware, clientip.Middleware)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "ok\n")
	})
	r.Route("/v1", func(r chi.Router) {
		if limiter != nil {
			r.Use(ratelimiter.Middleware(limiter, func(r *http.Request) string {
				return clientip.FromContext(r.Context())
			}, http.HandlerFunc(verify.TooManyRequests)))
		}
		r.Mount("/", verify.Router(verify.Options{Logger: log}))
	})

	return r
}

func cmdServe(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(errOut)
	addr := fs.String("addr", "", "listen address, overrides HTTP_ADDR")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(errOut, "serve takes no arguments")
		return 2
	}

	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(errOut, "load config: %v\n", err)
		return 1
	}
	if *addr != "" {
		cfg.HTTP.Addr = *addr
	}

	logOpts, err := cfg.loggerOptions(out)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}
	log := logger.New(logOpts...)
	logger.SetAsDefault(log)

	var limiter *ratelimiter.Limiter
	if cfg.RateLimitEnabled {
		if limiter, err = ratelimiter.New(cfg.RateLimit); err != nil {
			fmt.Fprintln(errOut, err)
			return 2
		}
	}

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	if err := srv.Run(context.Background(), newRouter(log, limiter)); err != nil {
		log.Error("server stopped", logger.Error(err))
		return 1
	}
	return 0
}
