// Package config reads the environment-driven settings. A .env file in the
// working directory is honored when present; real environment variables win.
package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

type Config struct {
	// DataDir holds the persisted collections, one file per collection.
	DataDir string
	// LogLevel controls the console logger.
	LogLevel zerolog.Level
	// AdminUser and AdminHash (bcrypt) gate the admin session. When either
	// is unset every session is read-only.
	AdminUser string
	AdminHash string
	// Pprof enables the localhost profiling server.
	Pprof bool
}

func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		DataDir:   os.Getenv("CONTINGENCIA_DATA_DIR"),
		AdminUser: os.Getenv("CONTINGENCIA_ADMIN_USER"),
		AdminHash: os.Getenv("CONTINGENCIA_ADMIN_HASH"),
		Pprof:     os.Getenv("CONTINGENCIA_PPROF") != "",
		LogLevel:  zerolog.InfoLevel,
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "datos"
	}
	if raw := os.Getenv("CONTINGENCIA_LOG_LEVEL"); raw != "" {
		if level, err := zerolog.ParseLevel(raw); err == nil {
			cfg.LogLevel = level
		}
	}
	return cfg
}
