package config

import "os"

// parseEnv overlays the variables the deployment environment provides:
//
//	PORT          HTTP port; the server binds ":" + PORT
//	DATABASE_DSN  PostgreSQL DSN
//	JWT_SECRET    token signing secret
//	LOG_LEVEL     log level
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("PORT"); ok && v != "" {
		config.EndpointAddrHTTP = ":" + v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("JWT_SECRET"); ok && v != "" {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("LOG_LEVEL"); ok && v != "" {
		config.LogLevel = v
	}
}
