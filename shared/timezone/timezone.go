package timezone

import (
	"fmt"
	"seatpos/config"
	"seatpos/shared/constant"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const defaultTimezone = "Asia/Ho_Chi_Minh"

var (
	appLocation *time.Location
)

func init() {
	cfg := config.Get()

	if cfg.App.Timezone == "" {
		log.Warn().Str("timezone", defaultTimezone).Msg("No timezone configured, using default")
		cfg.App.Timezone = defaultTimezone
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", cfg.App.Timezone).
			Msg("Failed to load timezone, falling back to UTC. Please use standard timezone names like 'Asia/Ho_Chi_Minh', 'UTC'")
		appLocation = time.UTC
		return
	}

	appLocation = loc
	log.Info().
		Str("timezone", cfg.App.Timezone).
		Str("location", loc.String()).
		Msg("Application timezone initialized")
}

// Now returns the current time in the application timezone
func Now() time.Time {
	if appLocation == nil {
		log.Warn().Msg("Timezone not initialized, using UTC")
		return time.Now().UTC()
	}
	return time.Now().In(appLocation)
}

// ToAppTime converts a time to the application timezone
func ToAppTime(t time.Time) time.Time {
	if appLocation == nil {
		log.Warn().Msg("Timezone not initialized, using UTC")
		return t.UTC()
	}
	return t.In(appLocation)
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	if appLocation == nil {
		log.Warn().Msg("Timezone not initialized, returning UTC")
		return time.UTC
	}
	return appLocation
}

// Parse parses a time string in the application timezone
func Parse(layout, value string) (time.Time, error) {
	if appLocation == nil {
		log.Warn().Msg("Timezone not initialized, parsing in UTC")
		return time.Parse(layout, value)
	}
	return time.ParseInLocation(layout, value, appLocation)
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// Combine joins a "2006-01-02" day and a "15:04" or "15:04:05" clock into one instant in loc.
// A day carrying a time part ("2006-01-02T00:00:00") is cut to its date.
func Combine(day, clock string, loc *time.Location) (time.Time, error) {
	if len(day) > len(constant.DayFormat) {
		day = day[:len(constant.DayFormat)]
	}

	layout := constant.ClockFormat
	if strings.Count(clock, ":") == 2 {
		layout = constant.ClockFormatSecs
	}

	t, err := time.ParseInLocation(constant.DayFormat+" "+layout, day+" "+clock, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("combine %q %q: %w", day, clock, err)
	}

	return t, nil
}
