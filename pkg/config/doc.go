// Package config loads configuration structs from environment variables.
//
// It wraps env-tag parsing with optional .env file loading so the
// workstation tool behaves the same under systemd, cron and an interactive
// shell. The package also defines Paths, the canonical location set for the
// authorization core's persisted state.
//
// There are no process-wide mutable path globals: managers receive explicit
// configuration structs, and Paths is only a convenience for assembling
// them.
//
// Example:
//
//	var paths config.Paths
//	if err := config.Load(&paths); err != nil {
//	    // Handle error
//	}
package config
