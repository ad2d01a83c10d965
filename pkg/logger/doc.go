// Package logger builds slog loggers for the rollcall binary.
//
// New returns a *slog.Logger configured by Option functions: output format
// (text or JSON), minimum level, static attributes, and ContextExtractor
// callbacks that add request-scoped values such as the request ID at logging
// time. WithEnvironment applies per-deployment defaults.
//
// Attribute helpers (Error, RequestID, Role, Component, Kind, Row, Duration,
// Issues) keep key names consistent across packages. Helpers given a zero
// value return an empty Attr, which slog drops:
//
//	log := logger.New(
//	    logger.WithEnvironment(logger.ParseEnvironment(os.Getenv("APP_ENV")), "rollcall"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "import checked", logger.Issues(len(report.Issues)), logger.Error(err))
package logger
