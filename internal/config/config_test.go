// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package config

import (
	"log/slog"
	"testing"
	"time"
)

const (
	expectLogLevel         = slog.LevelInfo
	expectRadius           = 250.0
	expectProvider         = "nominatim"
	expectGeocoderTimeout  = time.Second * 10
	expectOverpassTimeout  = time.Second * 30
	expectOverpassEndpoint = DefaultOverpassEndpoint
	expectOutputFile       = DefaultOutputFile
	expectZoom             = 17
)

func TestNew(t *testing.T) {
	t.Run("new config with all defaults set", func(t *testing.T) {
		conf, err := New()
		if err != nil {
			t.Fatalf("failed to load config: %s", err)
		}
		checkDefaults(t, conf)
	})
	t.Run("new config with values from env", func(t *testing.T) {
		t.Setenv("BERLINPOI_SEARCH_RADIUS", "500")
		t.Setenv("BERLINPOI_OUTPUT_FILE", "/tmp/map.html")
		t.Setenv("BERLINPOI_GEOCODER_PROVIDER", "opencage")
		conf, err := New()
		if err != nil {
			t.Fatalf("failed to load config: %s", err)
		}
		if conf.Search.Radius != 500 {
			t.Errorf("expected radius to be: 500, got %g", conf.Search.Radius)
		}
		if conf.Output.File != "/tmp/map.html" {
			t.Errorf("expected output file to be: /tmp/map.html, got %s", conf.Output.File)
		}
		if conf.GeoCoder.Provider != "opencage" {
			t.Errorf("expected geocoder provider to be: opencage, got %s", conf.GeoCoder.Provider)
		}
	})
	t.Run("new config with invalid values from env", func(t *testing.T) {
		t.Setenv("BERLINPOI_LOGLEVEL", "invalid")
		_, err := New()
		if err == nil {
			t.Error("expected config to fail, but didn't")
		}
	})
	t.Run("config validate radius", func(t *testing.T) {
		t.Setenv("BERLINPOI_SEARCH_RADIUS", "-1")
		_, err := New()
		if err == nil {
			t.Error("expected config to fail, but didn't")
		}
	})
	t.Run("config validate geocoder provider", func(t *testing.T) {
		t.Setenv("BERLINPOI_GEOCODER_PROVIDER", "invalid")
		_, err := New()
		if err == nil {
			t.Error("expected config to fail, but didn't")
		}
	})
	t.Run("config validate zoom", func(t *testing.T) {
		for _, zoom := range []string{"-1", "21"} {
			t.Setenv("BERLINPOI_OUTPUT_ZOOM", zoom)
			_, err := New()
			if err == nil {
				t.Errorf("expected config with zoom %s to fail, but didn't", zoom)
			}
		}
	})
	t.Run("zero radius and zoom select the defaults", func(t *testing.T) {
		t.Setenv("BERLINPOI_SEARCH_RADIUS", "0")
		t.Setenv("BERLINPOI_OUTPUT_ZOOM", "0")
		conf, err := New()
		if err != nil {
			t.Fatalf("failed to load config: %s", err)
		}
		if conf.Search.Radius != expectRadius {
			t.Errorf("expected radius to be: %g, got %g", expectRadius, conf.Search.Radius)
		}
		if conf.Output.Zoom != expectZoom {
			t.Errorf("expected zoom to be: %d, got %d", expectZoom, conf.Output.Zoom)
		}
	})
	t.Run("config validate timeouts", func(t *testing.T) {
		t.Setenv("BERLINPOI_OVERPASS_TIMEOUT", "-5s")
		_, err := New()
		if err == nil {
			t.Error("expected config to fail, but didn't")
		}
	})
	t.Run("locale is read from the environment", func(t *testing.T) {
		t.Setenv("LC_MESSAGES", "de_DE.UTF-8")
		conf, err := New()
		if err != nil {
			t.Fatalf("failed to load config: %s", err)
		}
		if conf.Locale != "de-DE" {
			t.Errorf("expected locale to be: de-DE, got %s", conf.Locale)
		}
	})
}

func TestNewFromFile(t *testing.T) {
	t.Run("reading config from valid file succeeds", func(t *testing.T) {
		conf, err := NewFromFile("../../etc", "config.toml")
		if err != nil {
			t.Fatalf("failed to load config: %s", err)
		}
		checkDefaults(t, conf)
		if conf.Locale != "en" {
			t.Errorf("expected locale to be: en, got %s", conf.Locale)
		}
	})
	t.Run("reading config from non-existent file fails", func(t *testing.T) {
		_, err := NewFromFile("../../etc", "non-existent.toml")
		if err == nil {
			t.Error("expected config to fail, but didn't")
		}
	})
	t.Run("reading invalid config file fails", func(t *testing.T) {
		_, err := NewFromFile("../../testdata", "invalid.toml")
		if err == nil {
			t.Error("expected config to fail, but didn't")
		}
	})
}

func checkDefaults(t *testing.T, conf *Config) {
	t.Helper()
	if conf.LogLevel != expectLogLevel {
		t.Errorf("expected log level to be: %s, got %s", expectLogLevel, conf.LogLevel)
	}
	if conf.Search.Radius != expectRadius {
		t.Errorf("expected search radius to be: %g, got %g", expectRadius, conf.Search.Radius)
	}
	if conf.GeoCoder.Provider != expectProvider {
		t.Errorf("expected geocoder provider to be: %s, got %s", expectProvider, conf.GeoCoder.Provider)
	}
	if conf.GeoCoder.Timeout != expectGeocoderTimeout {
		t.Errorf("expected geocoder timeout to be: %s, got %s", expectGeocoderTimeout, conf.GeoCoder.Timeout)
	}
	if conf.Overpass.Timeout != expectOverpassTimeout {
		t.Errorf("expected overpass timeout to be: %s, got %s", expectOverpassTimeout, conf.Overpass.Timeout)
	}
	if conf.Overpass.Endpoint != expectOverpassEndpoint {
		t.Errorf("expected overpass endpoint to be: %s, got %s", expectOverpassEndpoint, conf.Overpass.Endpoint)
	}
	if conf.Output.File != expectOutputFile {
		t.Errorf("expected output file to be: %s, got %s", expectOutputFile, conf.Output.File)
	}
	if conf.Output.Zoom != expectZoom {
		t.Errorf("expected zoom to be: %d, got %d", expectZoom, conf.Output.Zoom)
	}
}
