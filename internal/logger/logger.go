package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// Init builds the global zap logger for the given environment and installs it
// via zap.ReplaceGlobals.
func Init(environment string) error {
	var (
		l   *zap.Logger
		err error
	)

	if environment == "production" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return fmt.Errorf("zap.New -> %w", err)
	}

	zap.ReplaceGlobals(l)

	return nil
}
