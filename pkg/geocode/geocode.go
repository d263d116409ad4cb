// Package geocode turns device coordinates into a "City, Country" string.
// Permission denial and resolution failures degrade to placeholder text;
// they never fail the enclosing flow.
package geocode

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"
)

const (
	PlaceholderDenied      = "Location permission denied"
	PlaceholderUnavailable = "Location not available"
)

// ErrPermissionDenied is returned by a Locator when the user refused the
// foreground location permission.
var ErrPermissionDenied = errors.New("location permission denied")

type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Locator is the device capability that yields current coordinates.
type Locator interface {
	Current() (Coordinates, error)
}

// Reverser resolves coordinates into a human-readable place string.
type Reverser interface {
	Reverse(lat, lon float64) (string, error)
}

// Resolve runs the permission, coordinates and reverse-geocode chain
// and always comes back with something displayable.
func Resolve(loc Locator, rev Reverser) string {
	coords, err := loc.Current()
	if err != nil {
		if errors.Is(err, ErrPermissionDenied) {
			return PlaceholderDenied
		}
		log.Printf("[geocode] locate: %v", err)
		return PlaceholderUnavailable
	}
	if rev == nil {
		return PlaceholderUnavailable
	}
	place, err := rev.Reverse(coords.Latitude, coords.Longitude)
	if err != nil || place == "" {
		if err != nil {
			log.Printf("[geocode] reverse: %v", err)
		}
		return PlaceholderUnavailable
	}
	return place
}

type httpReverser struct {
	endpoint string
	httpc    *http.Client
}

func NewHTTPReverser(endpoint string, timeout time.Duration) Reverser {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &httpReverser{endpoint: endpoint, httpc: &http.Client{Timeout: timeout}}
}

// Reverse queries a nominatim-style endpoint. City falls back through
// town and village before giving up, same as the original's
// city || subregion || region chain.
func (r *httpReverser) Reverse(lat, lon float64) (string, error) {
	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%f", lat))
	q.Set("lon", fmt.Sprintf("%f", lon))
	q.Set("format", "json")

	resp, err := r.httpc.Get(r.endpoint + "?" + q.Encode())
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("geocode status %d", resp.StatusCode)
	}

	var out struct {
		Address struct {
			City    string `json:"city"`
			Town    string `json:"town"`
			Village string `json:"village"`
			State   string `json:"state"`
			Country string `json:"country"`
		} `json:"address"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}

	city := out.Address.City
	if city == "" {
		city = out.Address.Town
	}
	if city == "" {
		city = out.Address.Village
	}
	if city == "" {
		city = out.Address.State
	}
	if city == "" || out.Address.Country == "" {
		return "", nil
	}
	return city + ", " + out.Address.Country, nil
}

// StaticLocator returns fixed coordinates; the CLI uses it when the user
// passes --lat/--lon instead of having a real positioning device.
type StaticLocator Coordinates

func (s StaticLocator) Current() (Coordinates, error) { return Coordinates(s), nil }

// DeniedLocator models a refused permission prompt.
type DeniedLocator struct{}

func (DeniedLocator) Current() (Coordinates, error) {
	return Coordinates{}, ErrPermissionDenied
}
