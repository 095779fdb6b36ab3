// Package config defines the configuration of perspective-retraites and
// loads it from YAML and the environment.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/iwvelando/perspective-retraites/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for perspective-retraites.
type Configuration struct {
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging,omitempty"`
	Output   OutputConfig   `mapstructure:"output" yaml:"output,omitempty"`
	Server   ServerConfig   `mapstructure:"server" yaml:"server,omitempty"`
	Storage  StorageConfig  `mapstructure:"storage" yaml:"storage,omitempty"`
	Examples ExamplesConfig `mapstructure:"examples" yaml:"examples,omitempty"`
	Share    ShareConfig    `mapstructure:"share" yaml:"share,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `mapstructure:"level" yaml:"level,omitempty"`           // debug, info, warn, error
	Format     string `mapstructure:"format" yaml:"format,omitempty"`         // json, console
	OutputFile string `mapstructure:"outputFile" yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format,omitempty"` // pretty, json
}

// ServerConfig holds the HTTP API parameters.
type ServerConfig struct {
	Address     string `mapstructure:"address" yaml:"address,omitempty"`
	MaxBodySize string `mapstructure:"maxBodySize" yaml:"maxBodySize,omitempty"` // e.g. "64K"
	MaxSessions int    `mapstructure:"maxSessions" yaml:"maxSessions,omitempty"`
}

// StorageConfig locates the calculation counter. An empty path keeps the
// counter in memory.
type StorageConfig struct {
	Path         string        `mapstructure:"path" yaml:"path,omitempty"`
	PersistDelay time.Duration `mapstructure:"persistDelay" yaml:"persistDelay,omitempty"`
}

// ExamplesConfig points at the optional file refreshing catalog values.
type ExamplesConfig struct {
	OverridesFile string `mapstructure:"overridesFile" yaml:"overridesFile,omitempty"`
}

// ShareConfig holds the address quoted in share messages.
type ShareConfig struct {
	URL string `mapstructure:"url" yaml:"url,omitempty"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("output.format", constants.OutputFormatPretty)
	v.SetDefault("server.address", constants.DefaultServerAddress)
	v.SetDefault("server.maxBodySize", fmt.Sprintf("%d", constants.DefaultMaxBodySizeBytes))
	v.SetDefault("server.maxSessions", 10000)
	v.SetDefault("storage.path", constants.DefaultStoragePath)
	v.SetDefault("storage.persistDelay", constants.DefaultPersistDelayMillis*time.Millisecond)
	v.SetDefault("examples.overridesFile", "")
	v.SetDefault("share.url", constants.DefaultShareURL)

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there, applying defaults and RETRAITES_* environment
// overrides.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}
	return decode(v)
}

// LoadOptionalConfiguration behaves like LoadConfiguration but falls back to
// defaults and the environment when configPath does not exist.
func LoadOptionalConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file, %s", err)
		}
	}
	return decode(v)
}

// LoadConfigurationFromReader loads YAML configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}
	return decode(v)
}

// Defaults returns the configuration used when no file is provided.
func Defaults() *Configuration {
	conf, err := decode(newViper())
	if err != nil {
		// Defaults are static; decoding them cannot fail.
		panic(err)
	}
	return conf
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	return &configuration, nil
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		warnings = append(warnings, fmt.Sprintf("Unknown logging level '%s'", c.Logging.Level))
	}

	switch c.Logging.Format {
	case "", "json", "console":
	default:
		warnings = append(warnings, fmt.Sprintf("Unknown logging format '%s'", c.Logging.Format))
	}

	if c.Storage.Path == "" {
		warnings = append(warnings, "No storage path configured - the calculation count will not survive restarts")
	}
	if c.Storage.PersistDelay < 0 {
		warnings = append(warnings, fmt.Sprintf("Negative persist delay %s - the default will be used", c.Storage.PersistDelay))
	}

	if c.Share.URL != "" {
		if u, err := url.Parse(c.Share.URL); err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			warnings = append(warnings, fmt.Sprintf("Share URL '%s' is not an http(s) address", c.Share.URL))
		}
	}

	if c.Server.MaxSessions < 0 {
		warnings = append(warnings, "Negative server.maxSessions - sessions will not be bounded")
	}

	return warnings
}
