package config

import (
	"github.com/spf13/viper"
)

type StoreDriver string

const (
	StoreDriverMemory StoreDriver = "memory" // Slice in process memory (default)
	StoreDriverSQLite StoreDriver = "sqlite" // gorm over an in-memory SQLite database
)

type (
	Config struct {
		HTTP
		Global
		Store
		Demo
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Store struct {
		Driver    StoreDriver
		SQLiteDSN string
	}
	Demo struct {
		Enabled bool // Seed sample books and block write operations
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", DefaultPort)
	v.SetDefault("host", DefaultHost)
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("store_driver", string(StoreDriverMemory))
	v.SetDefault("sqlite_dsn", DefaultSQLiteDSN)
	v.SetDefault("demo_mode", false)

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Store: Store{
			Driver:    StoreDriver(v.GetString("STORE_DRIVER")),
			SQLiteDSN: v.GetString("SQLITE_DSN"),
		},
		Demo: Demo{
			Enabled: v.GetBool("DEMO_MODE"),
		},
	}
}
