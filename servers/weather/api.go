package weather

import "mockmcp/mockapi"

// Conditions and the matching descriptions/icons the fake upstream rotates through.
var (
	mainConditions = []string{"Clear", "Clouds", "Rain", "Snow", "Mist"}
	descriptions   = map[string]string{
		"Clear":  "clear sky",
		"Clouds": "scattered clouds",
		"Rain":   "light rain",
		"Snow":   "snowing",
		"Mist":   "misty",
	}
	icons = map[string]string{
		"Clear":  "01d",
		"Clouds": "02d",
		"Rain":   "10d",
		"Snow":   "13d",
		"Mist":   "50d",
	}
)

// fetchCurrentConditions simulates the upstream weather API. Values are random but
// plausible; structure is flat scalars only, reshaped by the tool handler.
func fetchCurrentConditions(src *mockapi.Source, lat, lon float64, metric bool) mockapi.Flat {
	condition := mockapi.Pick(src, mainConditions)
	current := src.FloatBetween(15, 35)
	tempUnit, windUnit := "°C", "m/s"
	if !metric {
		current = current*1.8 + 32
		tempUnit, windUnit = "°F", "mph"
	}
	return mockapi.Flat{
		"location_latitude":       lat,
		"location_longitude":      lon,
		"location_city":           "New York",
		"location_country":        "US",
		"conditions_main":         condition,
		"conditions_detail":       descriptions[condition],
		"conditions_icon":         icons[condition],
		"temp_current":            current,
		"temp_feels_like":         current + src.FloatBetween(-3, 3),
		"temp_min":                current - src.FloatBetween(2, 5),
		"temp_max":                current + src.FloatBetween(1, 4),
		"temp_unit":               tempUnit,
		"atmosphere_pressure":     src.IntBetween(990, 1035),
		"atmosphere_humidity":     src.IntBetween(25, 95),
		"atmosphere_visibility_m": src.IntBetween(2000, 10000),
		"wind_speed":              src.FloatBetween(0, 18),
		"wind_direction_deg":      src.IntBetween(0, 359),
		"wind_unit":               windUnit,
		"cloud_cover_pct":         src.IntBetween(0, 100),
		"sun_sunrise_unix":        src.UnixOffset(-6 * hour),
		"sun_sunset_unix":         src.UnixOffset(6 * hour),
		"observed_unix":           src.Unix(),
		"timezone_offset_sec":     -18000,
	}
}
