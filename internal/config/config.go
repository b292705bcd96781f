// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kkyr/fig"
)

const (
	configEnv = "BERLINPOI"

	DefaultOverpassEndpoint = "https://overpass-api.de/api/interpreter"
	DefaultOutputFile       = "poi_map.html"
)

// Config represents the application's configuration structure.
type Config struct {
	Locale   string     `fig:"locale"`
	LogLevel slog.Level `fig:"loglevel" default:"0"`

	Search struct {
		// Radius in meters, must be greater than zero. 0 selects the default
		Radius float64 `fig:"radius" default:"250"`
	} `fig:"search"`

	GeoCoder struct {
		// Allowed values: nominatim, opencage, geocode-earth
		Provider string        `fig:"provider" default:"nominatim"`
		APIKey   string        `fig:"apikey"`
		Timeout  time.Duration `fig:"timeout" default:"10s"`
	} `fig:"geocoder"`

	Overpass struct {
		Endpoint string        `fig:"endpoint"`
		Timeout  time.Duration `fig:"timeout" default:"30s"`
	} `fig:"overpass"`

	Output struct {
		File string `fig:"file"`
		// Allowed value: 1 to 20. 0 selects the default
		Zoom int `fig:"zoom" default:"17"`
	} `fig:"output"`
}

func NewFromFile(path, file string) (*Config, error) {
	conf := new(Config)
	_, err := os.Stat(filepath.Join(path, file))
	if err != nil {
		return conf, fmt.Errorf("failed to read Config: %w", err)
	}
	if err = fig.Load(conf, fig.Dirs(path), fig.File(file), fig.UseEnv(configEnv)); err != nil {
		return conf, fmt.Errorf("failed to load Config: %w", err)
	}

	return conf, conf.Validate()
}

func New() (*Config, error) {
	conf := new(Config)
	if err := fig.Load(conf, fig.AllowNoFile(), fig.UseEnv(configEnv)); err != nil {
		return conf, fmt.Errorf("failed to load Config: %w", err)
	}

	return conf, conf.Validate()
}

func (c *Config) Validate() error {
	if c.Locale == "" {
		c.Locale = getLocale()
	}
	if c.Search.Radius <= 0 {
		return fmt.Errorf("invalid search radius: %g", c.Search.Radius)
	}
	switch strings.ToLower(c.GeoCoder.Provider) {
	case "nominatim", "opencage", "geocode-earth":
	default:
		return fmt.Errorf("invalid geocoder provider: %s", c.GeoCoder.Provider)
	}
	if c.GeoCoder.Timeout <= 0 {
		return fmt.Errorf("invalid geocoder timeout: %s", c.GeoCoder.Timeout)
	}
	if c.Overpass.Timeout <= 0 {
		return fmt.Errorf("invalid overpass timeout: %s", c.Overpass.Timeout)
	}
	if c.Overpass.Endpoint == "" {
		c.Overpass.Endpoint = DefaultOverpassEndpoint
	}
	if c.Output.File == "" {
		c.Output.File = DefaultOutputFile
	}
	if c.Output.Zoom < 1 || c.Output.Zoom > 20 {
		return fmt.Errorf("invalid map zoom level: %d", c.Output.Zoom)
	}

	return nil
}

func getLocale() string {
	locale := os.Getenv("LC_MESSAGES")
	if idx := strings.Index(locale, "."); idx != -1 {
		lang := locale[:idx]
		return strings.ReplaceAll(lang, "_", "-")
	}
	return locale
}
