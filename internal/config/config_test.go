package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{"PORT", "HOST", "SHUTDOWN_TIMEOUT_IN_SECONDS", "STORE_DRIVER", "SQLITE_DSN", "DEMO_MODE"} {
			t.Setenv(key, "")
		}

		cfg := NewConfig()

		assert.Equal(t, int32(DefaultPort), cfg.HTTP.Port)
		assert.Equal(t, DefaultHost, cfg.HTTP.Host)
		assert.Equal(t, 2, cfg.Global.ShutdownTimeoutInSeconds)
		assert.Equal(t, StoreDriverMemory, cfg.Store.Driver)
		assert.Equal(t, DefaultSQLiteDSN, cfg.Store.SQLiteDSN)
		assert.False(t, cfg.Demo.Enabled)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("PORT", "5000")
		t.Setenv("HOST", "0.0.0.0")
		t.Setenv("SHUTDOWN_TIMEOUT_IN_SECONDS", "10")
		t.Setenv("STORE_DRIVER", "sqlite")
		t.Setenv("SQLITE_DSN", "file:other?mode=memory")
		t.Setenv("DEMO_MODE", "true")

		cfg := NewConfig()

		assert.Equal(t, int32(5000), cfg.HTTP.Port)
		assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
		assert.Equal(t, 10, cfg.Global.ShutdownTimeoutInSeconds)
		assert.Equal(t, StoreDriverSQLite, cfg.Store.Driver)
		assert.Equal(t, "file:other?mode=memory", cfg.Store.SQLiteDSN)
		assert.True(t, cfg.Demo.Enabled)
	})
}
