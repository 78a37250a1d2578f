// Package httpserver wraps net/http with graceful shutdown and configurable
// timeouts.
//
// Run blocks until its context is cancelled or the process receives an
// interrupt or SIGTERM, then calls http.Server.Shutdown bounded by the shutdown
// timeout. Settings come from functional options or from Config, which carries
// `env` tags for pkg/config.
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
package httpserver
