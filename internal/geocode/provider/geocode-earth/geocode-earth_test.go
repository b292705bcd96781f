// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package geocodeearth

import (
	"errors"
	"log/slog"
	"math"
	stdhttp "net/http"
	"strings"
	"testing"
	"time"

	"golang.org/x/text/language"

	"github.com/wneessen/berlin-poi/internal/geocode"
	"github.com/wneessen/berlin-poi/internal/http"
	"github.com/wneessen/berlin-poi/internal/logger"
	"github.com/wneessen/berlin-poi/internal/testhelper"
)

const (
	cityQuery    = "Alexanderplatz, Berlin, Germany"
	cityExpected = "Alexanderplatz, Berlin, Germany"
	cityFile     = "../../../../testdata/geocodeearth_search_berlin.json"
	emptyFile    = "../../../../testdata/geocodeearth_search_empty.json"
	noCoordsFile = "../../../../testdata/geocodeearth_search_nocoords.json"
	testAPIKey   = "test-key"
	testTimeout  = time.Second * 5
)

func TestNew(t *testing.T) {
	t.Run("creating a new provider succeeds", func(t *testing.T) {
		coder := testCoder(t)
		if coder == nil {
			t.Fatal("expected a non-nil geocoder")
		}
	})
	t.Run("provider name is correct", func(t *testing.T) {
		coder := testCoder(t)
		if coder.Name() != name {
			t.Errorf("expected provider name to be %q, got %q", name, coder.Name())
		}
	})
}

func TestGeocodeEarth_Search(t *testing.T) {
	t.Run("geocoding succeeds", func(t *testing.T) {
		var gotReq *stdhttp.Request
		fileFn := testhelper.FileResponse(t, cityFile, 200)
		rtFn := func(req *stdhttp.Request) (*stdhttp.Response, error) {
			gotReq = req
			return fileFn(req)
		}

		coder := testCoderWithRoundtripFunc(t, rtFn)
		loc, err := coder.Search(t.Context(), cityQuery)
		if err != nil {
			t.Fatal(err)
		}
		if !loc.Found {
			t.Fatal("expected address to be found")
		}
		if !strings.EqualFold(loc.DisplayName, cityExpected) {
			t.Errorf("expected address to be %q, got %q", cityExpected, loc.DisplayName)
		}
		if math.Abs(loc.Point.Lat-52.5219184) > 1e-9 || math.Abs(loc.Point.Lon-13.4132147) > 1e-9 {
			t.Errorf("expected GeoJSON coordinates to be swapped into lat/lon, got %s", loc.Point)
		}
		if got := gotReq.URL.Query().Get("text"); got != cityQuery {
			t.Errorf("expected query %q, got %q", cityQuery, got)
		}
		if got := gotReq.URL.Query().Get("api_key"); got != testAPIKey {
			t.Errorf("expected API key %q, got %q", testAPIKey, got)
		}
	})
	t.Run("geocoding without a match", func(t *testing.T) {
		coder := testCoderWithRoundtripFunc(t, testhelper.FileResponse(t, emptyFile, 200))
		loc, err := coder.Search(t.Context(), cityQuery)
		if err != nil {
			t.Fatal(err)
		}
		if loc.Found {
			t.Error("expected address not to be found")
		}
	})
	t.Run("geocoding fails on feature without coordinates", func(t *testing.T) {
		coder := testCoderWithRoundtripFunc(t, testhelper.FileResponse(t, noCoordsFile, 200))
		_, err := coder.Search(t.Context(), cityQuery)
		if err == nil {
			t.Fatal("expected geocoding to fail")
		}
	})
	t.Run("geocoding fails", func(t *testing.T) {
		rtFn := func(req *stdhttp.Request) (*stdhttp.Response, error) {
			return nil, errors.New("intentionally failing")
		}

		coder := testCoderWithRoundtripFunc(t, rtFn)
		_, err := coder.Search(t.Context(), cityQuery)
		if err == nil {
			t.Fatal("expected API request to fail")
		}
	})
}

func testCoder(_ *testing.T) geocode.Geocoder {
	testHttpClient := http.New(logger.New(slog.LevelDebug))
	return New(testHttpClient, language.English, testAPIKey, testTimeout)
}

func testCoderWithRoundtripFunc(_ *testing.T, fn func(req *stdhttp.Request) (*stdhttp.Response, error)) geocode.Geocoder {
	testHttpClient := http.New(logger.New(slog.LevelDebug))
	testHttpClient.Transport = testhelper.MockRoundTripper{Fn: fn}
	return New(testHttpClient, language.English, testAPIKey, testTimeout)
}
