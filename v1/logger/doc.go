// Package logger builds the structured zap logger used across this
// library.
//
// Client packages accept a *zap.Logger directly (e.g. the voyageai
// client's WithLogger), so applications that already have a logger can
// pass their own. This package exists for applications that want the
// library's defaults: JSON on stderr, ISO8601 timestamps, pid and
// service fields, and an Fx module that flushes on shutdown.
//
//	log, err := logger.NewLogger(logger.Config{
//	    Level:       logger.Debug,
//	    ServiceName: "indexer",
//	})
package logger
