package logging

import (
	"go.uber.org/zap"

	"treekit/pkg/version"
)

// Setup builds the application logger. With verbose set, the development
// config is used so debug-level diagnostics reach the console.
func Setup(verbose bool, appName string) (*zap.Logger, error) {
	var cfg zap.Config

	if verbose {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	// Add default fields
	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": version.Get().Version,
	}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop(), err
	}

	zap.ReplaceGlobals(logger)
	return logger, nil
}
