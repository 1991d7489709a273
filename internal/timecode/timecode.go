package timecode

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Duration is a signed span of milliseconds. It doubles as a timestamp
// measured from the start of the media.
type Duration int64

// spans accepted by Parse: "+1500ms", "-2.5s", "90", "1h"
var spanRegex = regexp.MustCompile(`^([+-]?)(\d+(?:\.\d+)?)(ms|s|m|h)?$`)

var unitMillis = map[string]float64{
	"":   1,
	"ms": 1,
	"s":  1000,
	"m":  60 * 1000,
	"h":  60 * 60 * 1000,
}

// Parse reads a signed span such as "+1500ms". A missing unit means
// milliseconds. ok is false for empty, non-numeric or unknown-unit input.
func Parse(text string) (d Duration, ok bool) {
	matches := spanRegex.FindStringSubmatch(strings.TrimSpace(text))
	if matches == nil {
		return 0, false
	}

	value, err := strconv.ParseFloat(matches[2], 64)
	if err != nil {
		return 0, false
	}

	millis := math.Round(value * unitMillis[matches[3]])
	if matches[1] == "-" {
		millis = -millis
	}
	return Duration(millis), true
}

func (d Duration) Add(other Duration) Duration {
	return d + other
}

func (d Duration) Neg() Duration {
	return -d
}

func (d Duration) Milliseconds() int64 {
	return int64(d)
}

// Timestamp renders the SRT form HH:MM:SS,mmm. Negative values keep a
// leading minus sign so a rewind past zero stays visible.
func (d Duration) Timestamp() string {
	sign := ""
	ms := int64(d)
	if ms < 0 {
		sign = "-"
		ms = -ms
	}

	hours := ms / 3_600_000
	minutes := ms / 60_000 % 60
	seconds := ms / 1000 % 60
	millis := ms % 1000

	return fmt.Sprintf("%s%02d:%02d:%02d,%03d", sign, hours, minutes, seconds, millis)
}

func (d Duration) String() string {
	return d.Timestamp()
}

var timestampRegex = regexp.MustCompile(`^(-?)(\d+):(\d{2}):(\d{2})[,.](\d{1,3})$`)

// ParseTimestamp reads HH:MM:SS,mmm. A dot is accepted in place of the comma
// since some encoders emit it.
func ParseTimestamp(text string) (Duration, error) {
	matches := timestampRegex.FindStringSubmatch(strings.TrimSpace(text))
	if matches == nil {
		return 0, fmt.Errorf("invalid timestamp %q", text)
	}

	h, err := strconv.ParseInt(matches[2], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid hours in %q: %w", text, err)
	}
	m, _ := strconv.ParseInt(matches[3], 10, 64)
	s, _ := strconv.ParseInt(matches[4], 10, 64)
	if m > 59 || s > 59 {
		return 0, fmt.Errorf("invalid timestamp %q: minutes and seconds must be below 60", text)
	}

	// "1,5" means 500ms, not 5ms
	fraction := matches[5] + strings.Repeat("0", 3-len(matches[5]))
	ms, _ := strconv.ParseInt(fraction, 10, 64)

	total := Duration(h*3_600_000 + m*60_000 + s*1000 + ms)
	if matches[1] == "-" {
		total = -total
	}
	return total, nil
}
