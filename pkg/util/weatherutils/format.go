package weatherutils

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Unit is a temperature unit understood by FormatTemperature.
type Unit string

const (
	Celsius    Unit = "C"
	Fahrenheit Unit = "F"
)

// InvalidDate is returned by the date helpers for unparsable input.
const InvalidDate = "Invalid Date"

var timeLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02",
}

// ParseUnit maps "C"/"F" (any case, optional degree sign) to a Unit.
// It returns false for anything else.
func ParseUnit(value string) (Unit, bool) {
	switch strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(value), "°")) {
	case "", "C":
		return Celsius, true
	case "F":
		return Fahrenheit, true
	default:
		return "", false
	}
}

// FormatTemperature rounds the Celsius value to the nearest integer, converting to Fahrenheit when requested.
// Halves round up, matching browser Math.round.
func FormatTemperature(celsius float64, unit Unit) string {
	if unit == Fahrenheit {
		return fmt.Sprintf("%d°F", roundHalfUp(celsius*9/5+32))
	}
	return fmt.Sprintf("%d°C", roundHalfUp(celsius))
}

func roundHalfUp(v float64) int {
	r := int(math.Floor(v + 0.5))
	if r == 0 {
		return 0
	}
	return r
}

// FormatTime renders a WeatherAPI local timestamp as "Monday 3:04 PM".
func FormatTime(timestamp string) string {
	t, ok := parseTime(timestamp)
	if !ok {
		return InvalidDate
	}
	return t.Format("Monday 3:04 PM")
}

// DayName returns the short weekday of a date, e.g. "Mon".
func DayName(date string) string {
	t, ok := parseTime(date)
	if !ok {
		return InvalidDate
	}
	return t.Format("Mon")
}

func parseTime(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// IconURL turns the protocol-relative icon paths WeatherAPI returns into https URLs.
func IconURL(icon string) string {
	if strings.HasPrefix(icon, "//") {
		return "https:" + icon
	}
	return icon
}

// IconURLForCode builds the CDN icon URL for a condition icon code.
func IconURLForCode(code int, isDay bool) string {
	period := "night"
	if isDay {
		period = "day"
	}
	return fmt.Sprintf("https://cdn.weatherapi.com/weather/64x64/%s/%d.png", period, code)
}
