package internal

import (
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config represents the application configuration.
type Config struct {
	App     ApplicationConfig `yaml:"app"`
	Data    DataConfig        `yaml:"data"`
	Medium  MediumConfig      `yaml:"medium"`
	Preview PreviewConfig     `yaml:"preview"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.Data.Validate(); err != nil {
		return err
	}
	return c.Medium.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
	HTTP     HTTPConfig `yaml:"http"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return c.HTTP.Validate()
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	Port int `yaml:"port"`
}

// Address returns HTTP server address.
func (c *HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the HTTP configuration.
func (c *HTTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

// DataConfig holds the path to the JSON fixtures directory.
type DataConfig struct {
	Path string `yaml:"path"`
	// Watch reloads the snapshot when fixture files change on disk.
	Watch bool `yaml:"watch"`
}

// Validate validates the data configuration.
func (c *DataConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	)
}

// MediumConfig holds the optional feed enrichment settings. An empty handle
// disables enrichment entirely.
type MediumConfig struct {
	Handle string `yaml:"handle"`
	Title  string `yaml:"title"`
	// Proxies are URL prefixes tried, in order, when the direct feed fetch
	// fails (the feed host is not always reachable from every network).
	Proxies []string `yaml:"proxies"`
}

// Validate validates the medium configuration.
func (c *MediumConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Proxies, validation.Each(validation.Required)),
	)
}

// Enabled reports whether feed enrichment should run.
func (c *MediumConfig) Enabled() bool {
	return c.Handle != ""
}

// PreviewConfig holds the link-preview settings.
type PreviewConfig struct {
	// Fallbacks maps a host substring to a fixed preview image URL, used
	// instead of fetching the page.
	Fallbacks map[string]string `yaml:"fallbacks"`
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
			HTTP: HTTPConfig{
				Port: 8080,
			},
		},
		Data: DataConfig{
			Path:  "./data",
			Watch: true,
		},
		Medium: MediumConfig{
			Title: "Latest Medium Posts",
		},
	}
}
