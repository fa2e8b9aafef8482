package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetConfigPrefersEnvironment(t *testing.T) {
	config.AppPort = "9000"
	t.Cleanup(func() { config.AppPort = "" })

	assert.Equal(t, "9000", GetConfig("APP_PORT"))

	t.Setenv("APP_PORT", "7000")
	assert.Equal(t, "7000", GetConfig("APP_PORT"))
}

func TestGetConfigDefaults(t *testing.T) {
	assert.Equal(t, "postgres", GetConfig("DB_DRIVER"))
	assert.Equal(t, 24, GetConfigInt("JWT_TTL_HOURS"))
	assert.Equal(t, "", GetConfig("UNKNOWN_KEY"))
}

func TestGetConfigIntFallsBackOnGarbage(t *testing.T) {
	t.Setenv("RATE_LIMIT_MAX", "lots")
	assert.Equal(t, 20, GetConfigInt("RATE_LIMIT_MAX"))
}
