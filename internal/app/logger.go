package app

import (
	"os"

	"github.com/shivanisurendran/hostelparcel-management/internal/config"
	"github.com/shivanisurendran/hostelparcel-management/internal/logx"
)

// NewLogger returns the JSON logger on stdout at the configured level.
func NewLogger(cfg *config.Config) logx.Logger {
	return logx.NewJSON(os.Stdout, cfg.LogLevel).With(logx.String("service", serviceName))
}
