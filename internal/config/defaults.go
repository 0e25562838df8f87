package config

import "time"

const defaultPort = 8080

const defaultLogLevel = "info"

var defaultPprof = PprofConfig{
	Enabled: false,
	Addr:    "127.0.0.1:6060",
}

// Demo credentials; override them outside local runs.
var defaultAuth = AuthConfig{
	JWTSecret:      "dev-only-change-me",
	TokenTTL:       12 * time.Hour,
	MatronEmail:    "matron@hostel.com",
	MatronPassword: "matron123",
}

var defaultParcels = ParcelsConfig{
	SeedDemo:         true,
	OperationTimeout: 3 * time.Second,
	StatsInterval:    time.Minute,
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultPprof returns the default pprof server settings.
func DefaultPprof() PprofConfig {
	return defaultPprof
}

// DefaultAuth returns the default auth settings.
func DefaultAuth() AuthConfig {
	return defaultAuth
}

// DefaultParcels returns the default parcel desk settings.
func DefaultParcels() ParcelsConfig {
	return defaultParcels
}
