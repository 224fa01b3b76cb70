// Package logger provides a configured slog.Logger factory for the
// workstation tool.
//
// Defaults are production-safe: JSON output at INFO level. Options switch
// to human-readable text output for interactive runs and attach static
// attributes shared by every record.
//
// Basic usage:
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithAttr(slog.String("component", "rbac")),
//	)
package logger
