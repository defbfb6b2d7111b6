package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

const envPrefix = "WORKFORCE"

// Config represents the configuration implementation.
type Config struct {
	AppName     string
	Environment string
	Server      *Server
	Logger      *Logger
	Data        *Data
	Auth        *Auth
	Observes    *Observes
	Viper       *viper.Viper

	mu sync.Mutex
}

// LoadConfig loads the configuration from configPath. An empty path searches
// the default locations and tolerates a missing file.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("$HOME/.workforce")
		v.AddConfigPath("/etc/workforce")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return fromViper(v), nil
}

// fromViper builds a Config from an already populated viper instance.
func fromViper(v *viper.Viper) *Config {
	return &Config{
		AppName:     getStringOrDefault(v, "app_name", "workforce"),
		Environment: getStringOrDefault(v, "environment", "release"),
		Server:      getServerConfig(v),
		Logger:      getLoggerConfig(v),
		Data:        getDataConfig(v),
		Auth:        getAuth(v),
		Observes:    getObservesConfig(v),
		Viper:       v,
	}
}

// Validate checks the settings the service cannot start without.
func (c *Config) Validate() error {
	if c.Auth == nil || c.Auth.JWT == nil || c.Auth.JWT.Secret == "" {
		return errors.New("auth.jwt.secret is required")
	}
	if c.Data == nil || c.Data.MongoDB == nil || c.Data.MongoDB.URI == "" {
		return errors.New("data.mongodb.uri is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	return nil
}

// IsProd reports whether the service runs in release mode.
func (c *Config) IsProd() bool {
	return c.Environment == "release" || c.Environment == "production"
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// Watch watches the configuration file and calls callback with the reloaded
// configuration whenever it changes.
func (c *Config) Watch(callback func(*Config)) {
	if c.Viper == nil || c.Viper.ConfigFileUsed() == "" {
		return
	}
	c.Viper.OnConfigChange(func(e fsnotify.Event) {
		c.mu.Lock()
		defer c.mu.Unlock()
		if e.Op&(fsnotify.Write|fsnotify.Create) == 0 {
			return
		}
		callback(fromViper(c.Viper))
	})
	c.Viper.WatchConfig()
}
