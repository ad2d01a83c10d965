// Package httpserver runs the pre-flight API with graceful shutdown.
//
// Run listens, serves until the context is cancelled or the process receives
// SIGINT or SIGTERM, then drains in-flight requests within the shutdown
// timeout. HealthCheckHandler answers liveness and readiness probes with a
// small JSON document.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
package httpserver
