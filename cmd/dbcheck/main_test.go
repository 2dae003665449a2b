package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"fitness-app/internal/config"
	"fitness-app/pkg/logger"
)

func TestRun_DatabaseUnavailable(t *testing.T) {
	cfg := &config.Config{
		AppEnv: "test",
		Database: config.DatabaseConfig{
			Host:    "127.0.0.1",
			Port:    "1",
			User:    "fitness",
			DBName:  "fitness",
			SSLMode: "disable",
		},
	}

	err := run(cfg, logger.Nop(), options{attempts: 2, schema: true})
	require.Error(t, err)
	require.Contains(t, err.Error(), "после 2 попыток")
}
