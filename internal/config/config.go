/*
Package config resolves the location a zmanim-cli invocation runs against:
name, coordinates, elevation, time zone, and whether the location is in
Israel (which changes several calendar rules: Yom Tov Sheni, the parsha
cycle, Tachanun windows). Values come from CLI flags first, then a .env
file loaded with godotenv, matching the layering jcom-dev-zmanim uses in
its cmd/<name>/main.go entrypoints. No mutable global state escapes this
package; Resolve returns a plain Location value.
*/
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Location is the resolved, validated input to the zmanim calculators.
type Location struct {
	Name       string
	Latitude   float64
	Longitude  float64
	Elevation  float64
	TimeZone   *time.Location
	InIsrael   bool
}

// Flags collects the raw, possibly-empty CLI flag values Resolve falls
// back to environment variables for.
type Flags struct {
	Name      string
	Latitude  string
	Longitude string
	Elevation string
	TimeZone  string
	InIsrael  string
}

// LoadDotEnv loads a .env file if present. A missing file is not an error;
// this mirrors godotenv.Load's own treatment of optional configuration.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}

// Resolve builds a Location from flags, falling back to environment
// variables ZMANIM_LOCATION_NAME / ZMANIM_LATITUDE / ZMANIM_LONGITUDE /
// ZMANIM_ELEVATION / ZMANIM_TIMEZONE / ZMANIM_IN_ISRAEL, in that order.
func Resolve(flags Flags) (Location, error) {
	name := firstNonEmpty(flags.Name, os.Getenv("ZMANIM_LOCATION_NAME"))
	latRaw := firstNonEmpty(flags.Latitude, os.Getenv("ZMANIM_LATITUDE"))
	lonRaw := firstNonEmpty(flags.Longitude, os.Getenv("ZMANIM_LONGITUDE"))
	elevRaw := firstNonEmpty(flags.Elevation, os.Getenv("ZMANIM_ELEVATION"))
	tzRaw := firstNonEmpty(flags.TimeZone, os.Getenv("ZMANIM_TIMEZONE"))
	inIsraelRaw := firstNonEmpty(flags.InIsrael, os.Getenv("ZMANIM_IN_ISRAEL"))

	if latRaw == "" || lonRaw == "" {
		return Location{}, fmt.Errorf("config: latitude and longitude are required")
	}

	lat, err := strconv.ParseFloat(latRaw, 64)
	if err != nil {
		return Location{}, fmt.Errorf("config: invalid latitude %q: %w", latRaw, err)
	}
	if lat < -90 || lat > 90 {
		return Location{}, fmt.Errorf("config: latitude %v out of range [-90, 90]", lat)
	}

	lon, err := strconv.ParseFloat(lonRaw, 64)
	if err != nil {
		return Location{}, fmt.Errorf("config: invalid longitude %q: %w", lonRaw, err)
	}
	if lon < -180 || lon > 180 {
		return Location{}, fmt.Errorf("config: longitude %v out of range [-180, 180]", lon)
	}

	var elev float64
	if elevRaw != "" {
		elev, err = strconv.ParseFloat(elevRaw, 64)
		if err != nil {
			return Location{}, fmt.Errorf("config: invalid elevation %q: %w", elevRaw, err)
		}
		if elev < 0 {
			return Location{}, fmt.Errorf("config: elevation %v must be non-negative", elev)
		}
	}

	if tzRaw == "" {
		tzRaw = "UTC"
	}
	tz, err := time.LoadLocation(tzRaw)
	if err != nil {
		return Location{}, fmt.Errorf("config: unknown time zone %q: %w", tzRaw, err)
	}

	inIsrael := false
	if inIsraelRaw != "" {
		inIsrael, err = strconv.ParseBool(inIsraelRaw)
		if err != nil {
			return Location{}, fmt.Errorf("config: invalid in-israel flag %q: %w", inIsraelRaw, err)
		}
	}

	if name == "" {
		name = "unnamed location"
	}

	return Location{
		Name:      name,
		Latitude:  lat,
		Longitude: lon,
		Elevation: elev,
		TimeZone:  tz,
		InIsrael:  inIsrael,
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
