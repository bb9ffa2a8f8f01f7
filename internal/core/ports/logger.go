// Package ports defines the core interfaces for the application.
package ports

// Logger defines the interface for logging.
//
//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Info logs an informational message.
	Info(msg string, attrs ...any)
	// Warn logs a warning message.
	Warn(msg string, attrs ...any)
	// Error logs an error together with its cause chain.
	Error(err error)
}
