// Package logger builds *slog.Logger values from functional options.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// handler with LogHandlerDecorator, which runs registered ContextExtractor
// callbacks on every record. This is how request ids reach log lines without
// threading a logger through every call.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "stateid"),
//	    logger.WithLevelName(cfg.LogLevel),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "identifier checked",
//	    logger.Jurisdiction("AL"),
//	    logger.Verdict("valid"),
//	)
//
// Helper constructors in attr.go keep attribute keys consistent across packages.
package logger
