package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/stepshot/stepshot/pkg/core"
)

// StorageConfig selects and configures the recording backend.
type StorageConfig struct {
	Type   string       `json:"type" mapstructure:"type"`
	Memory MemoryConfig `json:"memory" mapstructure:"memory"`
}

// MemoryConfig holds in-memory/JSON storage backend settings.
type MemoryConfig struct {
	OutputDir      string `json:"outputDir" mapstructure:"outputDir"`
	CompressOutput bool   `json:"compressOutput" mapstructure:"compressOutput"`
}

// SearchConfig bounds the launch-angle search.
type SearchConfig struct {
	MinAngleDeg  float64 `json:"minAngleDeg" mapstructure:"minAngleDeg"`
	MaxAngleDeg  float64 `json:"maxAngleDeg" mapstructure:"maxAngleDeg"`
	MaxSolutions int     `json:"maxSolutions" mapstructure:"maxSolutions"`
	Workers      int     `json:"workers" mapstructure:"workers"`
}

// InfluxConfig holds the optional time-series export settings.
type InfluxConfig struct {
	Enabled  bool   `json:"enabled" mapstructure:"enabled"`
	Protocol string `json:"protocol" mapstructure:"protocol"`
	Host     string `json:"host" mapstructure:"host"`
	Port     string `json:"port" mapstructure:"port"`
	Token    string `json:"token" mapstructure:"token"`
	Org      string `json:"org" mapstructure:"org"`
}

// Load reads configuration from the JSON config file in configDir and sets
// default values. The physics defaults reproduce the standard bench arena.
func Load(configDir string) error {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logsDir", "./logs")

	viper.SetDefault("physics.mass", 2.7e-3)
	viper.SetDefault("physics.drag", 5e-4)
	viper.SetDefault("physics.launchSpeed", 30.0)
	viper.SetDefault("physics.stepDistance", 6.0)
	viper.SetDefault("physics.stepHeight", 1.0)
	viper.SetDefault("physics.targetDistance", 8.0)
	viper.SetDefault("physics.wallDistance", 9.0)
	viper.SetDefault("physics.crosswind", 1.5)
	viper.SetDefault("physics.timeStep", 1e-3)
	viper.SetDefault("physics.tolerance", 1e-3)

	viper.SetDefault("search.minAngleDeg", 1.0)
	viper.SetDefault("search.maxAngleDeg", 89.0)
	viper.SetDefault("search.maxSolutions", 4)
	viper.SetDefault("search.workers", 4)

	viper.SetDefault("storage.type", "memory")
	viper.SetDefault("storage.memory.outputDir", "./recordings")
	viper.SetDefault("storage.memory.compressOutput", false)

	viper.SetDefault("db.host", "localhost")
	viper.SetDefault("db.port", "5432")
	viper.SetDefault("db.username", "postgres")
	viper.SetDefault("db.password", "postgres")
	viper.SetDefault("db.database", "stepshot")
	viper.SetDefault("db.sqlitePath", "./stepshot.db")

	viper.SetDefault("influx.enabled", false)
	viper.SetDefault("influx.protocol", "http")
	viper.SetDefault("influx.host", "localhost")
	viper.SetDefault("influx.port", "8086")
	viper.SetDefault("influx.token", "")
	viper.SetDefault("influx.org", "stepshot-metrics")

	viper.SetDefault("graylog.enabled", false)
	viper.SetDefault("graylog.address", "localhost:12201")

	viper.SetConfigName("stepshot.cfg.json")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		// Defaults cover everything, so a missing file is fine.
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %v", err)
	}

	return nil
}

// GetParameters returns the physics section as a Parameters record.
func GetParameters() core.Parameters {
	var p core.Parameters
	_ = viper.UnmarshalKey("physics", &p)
	return p
}

// GetSearchConfig returns the angle-search section.
func GetSearchConfig() SearchConfig {
	var c SearchConfig
	_ = viper.UnmarshalKey("search", &c)
	return c
}

// GetStorageConfig returns the storage section.
func GetStorageConfig() StorageConfig {
	var c StorageConfig
	_ = viper.UnmarshalKey("storage", &c)
	return c
}

// GetInfluxConfig returns the influx section.
func GetInfluxConfig() InfluxConfig {
	var c InfluxConfig
	_ = viper.UnmarshalKey("influx", &c)
	return c
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a duration config value.
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}
