// Package weather simulates a weather MCP server: current conditions by coordinates,
// fabricated from plausible random values.
package weather

import (
	"context"
	"fmt"
	"time"

	"mockmcp"
	"mockmcp/mockapi"
)

const hour = time.Hour

// Args are the inputs for get_weather_by_coordinates.
type Args struct {
	Latitude  float64 `json:"latitude" jsonschema:"required" description:"Latitude in decimal degrees, -90 to 90"`
	Longitude float64 `json:"longitude" jsonschema:"required" description:"Longitude in decimal degrees, -180 to 180"`
	Units     string  `json:"units,omitempty" description:"Measurement units" enum:"metric,imperial"`
}

// Validate checks coordinate ranges and the units value.
func (a Args) Validate() error {
	if a.Latitude < -90 || a.Latitude > 90 {
		return fmt.Errorf("latitude must be between -90 and 90, got %v", a.Latitude)
	}
	if a.Longitude < -180 || a.Longitude > 180 {
		return fmt.Errorf("longitude must be between -180 and 180, got %v", a.Longitude)
	}
	if a.Units != "" && a.Units != "metric" && a.Units != "imperial" {
		return fmt.Errorf("units must be 'metric' or 'imperial', got %q", a.Units)
	}
	return nil
}

// Report is the nested response documented for get_weather_by_coordinates.
type Report struct {
	Location    Location    `json:"location"`
	Conditions  Conditions  `json:"conditions"`
	Temperature Temperature `json:"temperature"`
	Atmosphere  Atmosphere  `json:"atmosphere"`
	Wind        Wind        `json:"wind"`
	CloudCover  int         `json:"cloudCoverPct"`
	Sun         Sun         `json:"sun"`
	ObservedAt  int64       `json:"observedAt"`
	TimezoneOff int         `json:"timezoneOffsetSec"`
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
}

type Conditions struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type Temperature struct {
	Current   float64 `json:"current"`
	FeelsLike float64 `json:"feelsLike"`
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	Unit      string  `json:"unit"`
}

type Atmosphere struct {
	PressureHPa int `json:"pressureHPa"`
	HumidityPct int `json:"humidityPct"`
	VisibilityM int `json:"visibilityM"`
}

type Wind struct {
	Speed     float64 `json:"speed"`
	Direction int     `json:"directionDeg"`
	Unit      string  `json:"unit"`
}

type Sun struct {
	Sunrise int64 `json:"sunrise"`
	Sunset  int64 `json:"sunset"`
}

// Tools builds the package's mock tools against src.
func Tools(src *mockapi.Source) ([]mockmcp.Tool, error) {
	byCoords, err := mockmcp.NewTool(
		"get_weather_by_coordinates",
		"Get current weather conditions for a pair of coordinates.",
		func(_ context.Context, a Args) (Report, error) {
			flat := fetchCurrentConditions(src, a.Latitude, a.Longitude, a.Units != "imperial")
			return reshape(flat), nil
		},
		mockmcp.WithTags("weather"),
	)
	if err != nil {
		return nil, err
	}
	return []mockmcp.Tool{byCoords}, nil
}

// reshape lifts the flat upstream payload into the documented nested report.
// Values pass through unchanged.
func reshape(flat mockapi.Flat) Report {
	return Report{
		Location: Location{
			Latitude:  flat.Float("location_latitude"),
			Longitude: flat.Float("location_longitude"),
			City:      flat.Str("location_city"),
			Country:   flat.Str("location_country"),
		},
		Conditions: Conditions{
			Main:        flat.Str("conditions_main"),
			Description: flat.Str("conditions_detail"),
			Icon:        flat.Str("conditions_icon"),
		},
		Temperature: Temperature{
			Current:   flat.Float("temp_current"),
			FeelsLike: flat.Float("temp_feels_like"),
			Min:       flat.Float("temp_min"),
			Max:       flat.Float("temp_max"),
			Unit:      flat.Str("temp_unit"),
		},
		Atmosphere: Atmosphere{
			PressureHPa: flat.Int("atmosphere_pressure"),
			HumidityPct: flat.Int("atmosphere_humidity"),
			VisibilityM: flat.Int("atmosphere_visibility_m"),
		},
		Wind: Wind{
			Speed:     flat.Float("wind_speed"),
			Direction: flat.Int("wind_direction_deg"),
			Unit:      flat.Str("wind_unit"),
		},
		CloudCover:  flat.Int("cloud_cover_pct"),
		Sun:         Sun{Sunrise: int64(flat.Int("sun_sunrise_unix")), Sunset: int64(flat.Int("sun_sunset_unix"))},
		ObservedAt:  int64(flat.Int("observed_unix")),
		TimezoneOff: flat.Int("timezone_offset_sec"),
	}
}
