// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package service

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/wneessen/berlin-poi/internal/config"
	"github.com/wneessen/berlin-poi/internal/geocode"
	geocodeearth "github.com/wneessen/berlin-poi/internal/geocode/provider/geocode-earth"
	"github.com/wneessen/berlin-poi/internal/geocode/provider/opencage"
	nominatim "github.com/wneessen/berlin-poi/internal/geocode/provider/osm-nominatim"
	"github.com/wneessen/berlin-poi/internal/http"
	"github.com/wneessen/berlin-poi/internal/logger"
	"github.com/wneessen/berlin-poi/internal/overpass"
	"github.com/wneessen/berlin-poi/internal/poi"
	"github.com/wneessen/berlin-poi/internal/presenter"
)

// NewFromConfig wires the geocoder, the Overpass client and the map renderer selected
// by conf into a Service.
func NewFromConfig(conf *config.Config, log *logger.Logger, lang language.Tag, opts ...Option) (*Service, error) {
	httpClient := http.New(log)

	geocoder, err := selectGeocodeProvider(conf, httpClient, lang)
	if err != nil {
		return nil, err
	}
	source := overpass.New(httpClient, log, conf.Overpass.Endpoint, conf.Overpass.Timeout)

	renderer, err := presenter.NewLeafletRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to create map renderer: %w", err)
	}

	return New(
		geocode.NewResolver(geocoder, log),
		poi.New(source, log),
		presenter.NewBuilder(renderer, conf.Output.File, conf.Output.Zoom, log),
		conf.Search.Radius,
		log,
		opts...,
	), nil
}

func selectGeocodeProvider(conf *config.Config, client *http.Client, lang language.Tag) (geocode.Geocoder, error) {
	var geocoder geocode.Geocoder

	switch strings.ToLower(conf.GeoCoder.Provider) {
	case "nominatim":
		geocoder = nominatim.New(client, lang, conf.GeoCoder.Timeout)
	case "opencage":
		if conf.GeoCoder.APIKey == "" {
			return nil, fmt.Errorf("opencage geocoder requires an API key")
		}
		geocoder = opencage.New(client, lang, conf.GeoCoder.APIKey, conf.GeoCoder.Timeout)
	case "geocode-earth":
		if conf.GeoCoder.APIKey == "" {
			return nil, fmt.Errorf("geocode-earth geocoder requires an API key")
		}
		geocoder = geocodeearth.New(client, lang, conf.GeoCoder.APIKey, conf.GeoCoder.Timeout)
	default:
		return nil, fmt.Errorf("unsupported geocoder type: %s", conf.GeoCoder.Provider)
	}

	return geocoder, nil
}
