// Package logging builds the zap logger shared by the server.
package logging

import (
	"health_data_api/internal/platform/config"

	"go.uber.org/zap"
)

// New returns a JSON logger in production and a console logger otherwise.
func New(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
