package logger

import "go.uber.org/zap"

// New builds the application logger for the given environment.
// Production gets JSON output, everything else the development console.
func New(environment string) (*zap.Logger, error) {
	if environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
