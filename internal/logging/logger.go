package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// New builds the application logger for the given environment.
// Production gets JSON output at info level, everything else the
// human-readable development encoder at debug level.
func New(env string) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// Sync flushes buffered entries. Errors from syncing stderr/stdout on
// some platforms are not actionable and are dropped.
func Sync(logger *zap.Logger) {
	_ = logger.Sync()
}
