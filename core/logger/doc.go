// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different
// environments (development vs production) with console or JSON encoding.
//
// # Correlation
//
// Batch runs process many sections in one invocation. The WithSection
// helper attaches the section name to a child logger so all lines from one
// section's processing can be correlated, and commands attach a per-run id
// the same way.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	l := logger.WithSection(log, "MATH-UA_122_001_1264")
//	l.Info("Generated enrollment roster")
package logger
