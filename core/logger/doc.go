// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production). Logs are written to stderr so they never mix
// with the interactive console on stdout.
//
// # Sessions
//
// Every interactive shell session gets its own identifier. The WithSession
// helper attaches it to the logger, so all lines written while serving one
// session can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Shell started")
//
//	l := logger.WithSession(log, logger.NewSessionID())
//	l.Warn("Restock notification", zap.String("item_id", "ID1"))
package logger
