package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// AppConfig holds application-specific configuration.
type AppConfig struct {
	ID              string        `mapstructure:"id"`
	Name            string        `mapstructure:"name"`
	Version         string        `mapstructure:"version"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MenuSlots       int           `mapstructure:"menu_slots"`
}

// LoggingConfig holds the logging-related configuration.
type LoggingConfig struct {
	Level string `mapstructure:"log_level"`
}

// DockerConfig holds daemon connection settings. An empty Host means the
// standard DOCKER_* environment is used.
type DockerConfig struct {
	Host string `mapstructure:"host"`
}

// NotifyConfig selects the desktop notification backend.
type NotifyConfig struct {
	Backend string `mapstructure:"backend"`
	Icon    string `mapstructure:"icon"`
}

// Config is the top-level configuration struct.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Logging LoggingConfig `mapstructure:"log"`
	Docker  DockerConfig  `mapstructure:"docker"`
	Notify  NotifyConfig  `mapstructure:"notify"`
}

const (
	NotifyBackendDBus  = "dbus"
	NotifyBackendBeeep = "beeep"
	NotifyBackendNone  = "none"
)

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("app.id", "docker-indicator")
	v.SetDefault("app.name", "Docker Indicator")
	v.SetDefault("app.version", "0.1.0")
	v.SetDefault("app.shutdown_timeout", time.Second)
	v.SetDefault("app.menu_slots", 32)
	v.SetDefault("log.log_level", "INFO")
	v.SetDefault("docker.host", "")
	v.SetDefault("notify.backend", NotifyBackendDBus)
	v.SetDefault("notify.icon", "")
}

// InitConfig performs the initial configuration: setting defaults, specifying the config file, and reading it.
// An explicit configFile takes precedence over the search path.
func InitConfig(v *viper.Viper, configFile string) error {
	SetDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config") // Looks for config.yaml
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "docker-indicator"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configFile != "" {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// If the file is not found, just continue with defaults and env vars.
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return nil
}

// Load unmarshals the configuration into the Config struct.
func Load(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	if c.App.ShutdownTimeout <= 0 {
		return fmt.Errorf("app.shutdown_timeout must be positive, got %s", c.App.ShutdownTimeout)
	}
	if c.App.MenuSlots <= 0 {
		return fmt.Errorf("app.menu_slots must be positive, got %d", c.App.MenuSlots)
	}
	switch strings.ToLower(c.Notify.Backend) {
	case NotifyBackendDBus, NotifyBackendBeeep, NotifyBackendNone:
	default:
		return fmt.Errorf("unsupported notify.backend %q", c.Notify.Backend)
	}
	return nil
}
