package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste-com-mais-de-32-caracteres")

	cfg := Load()

	assert.Equal(t, "5000", cfg.HTTPPort)
	assert.Equal(t, defaultDSN, cfg.DatabaseDSN)
	assert.Equal(t, "http://localhost:5173", cfg.CORSOrigins)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste-com-mais-de-32-caracteres")
	t.Setenv("HTTP_PORT", "8090")
	t.Setenv("DATABASE_DSN", "host=db user=frota dbname=frota port=5432")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://frota.example.com")

	cfg := Load()

	assert.Equal(t, "8090", cfg.HTTPPort)
	assert.Equal(t, "host=db user=frota dbname=frota port=5432", cfg.DatabaseDSN)
	assert.Equal(t, "https://frota.example.com", cfg.CORSOrigins)
}
