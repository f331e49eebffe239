package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, int32(20), cfg.Database.MaxConns)
	assert.Equal(t, 3*time.Second, cfg.Database.DialTimeout)
	assert.Equal(t, ":8080", cfg.Server.GRPCAddr)
	assert.Equal(t, ":8081", cfg.Server.HTTPAddr)
	assert.Equal(t, "nats://127.0.0.1:4222", cfg.Queue.URL)
	assert.Equal(t, "extractly.sessions", cfg.Queue.Subject)
	assert.Equal(t, "gemini-2.5-pro", cfg.LLM.Model)
	assert.Equal(t, float32(0.7), cfg.LLM.Temperature)
	assert.Equal(t, 3, cfg.LLM.MaxRetries)
	assert.Equal(t, 30*time.Second, cfg.Inbox.Timeout)
}

func TestLoadConfigReadsEnvironment(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost:5432/extractly")
	t.Setenv("DB_MAX_CONNS", "50")
	t.Setenv("GEMINI_TEMPERATURE", "0.2")
	t.Setenv("GEMINI_RATE_PER_SEC", "2.5")
	t.Setenv("GEMINI_TIMEOUT", "45s")
	t.Setenv("NATS_SUBJECT", "extractly.test")

	cfg := LoadConfig()
	assert.Equal(t, "postgres://localhost:5432/extractly", cfg.Database.DSN)
	assert.Equal(t, int32(50), cfg.Database.MaxConns)
	assert.Equal(t, float32(0.2), cfg.LLM.Temperature)
	assert.Equal(t, 2.5, cfg.LLM.RatePerSec)
	assert.Equal(t, 45*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, "extractly.test", cfg.Queue.Subject)
}

func TestLoadConfigIgnoresUnparsableValues(t *testing.T) {
	t.Setenv("DB_MAX_CONNS", "lots")
	t.Setenv("GEMINI_TIMEOUT", "soonish")

	cfg := LoadConfig()
	assert.Equal(t, int32(20), cfg.Database.MaxConns)
	assert.Equal(t, 120*time.Second, cfg.LLM.Timeout)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Database: DatabaseConfig{DSN: "postgres://localhost/extractly"},
			Server:   ServerConfig{GRPCAddr: ":8080", HTTPAddr: ":8081"},
			LLM:      LLMConfig{APIKey: "key"},
		}
	}

	require.NoError(t, valid().Validate())

	cases := map[string]func(*Config){
		"missing DB_URL":         func(c *Config) { c.Database.DSN = "" },
		"missing GEMINI_API_KEY": func(c *Config) { c.LLM.APIKey = "" },
		"missing GRPC_ADDR":      func(c *Config) { c.Server.GRPCAddr = "" },
		"missing HTTP_ADDR":      func(c *Config) { c.Server.HTTPAddr = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := valid()
			mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
