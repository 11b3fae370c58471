package types

import (
	"fmt"
	"strings"
	"time"
)

// Resolution is the bar size of a data subscription.
type Resolution string

const (
	ResolutionSecond Resolution = "second"
	ResolutionMinute Resolution = "minute"
	ResolutionHour   Resolution = "hour"
	ResolutionDaily  Resolution = "daily"
)

// AllResolutions lists resolutions from the finest to the coarsest.
var AllResolutions = []Resolution{
	ResolutionSecond,
	ResolutionMinute,
	ResolutionHour,
	ResolutionDaily,
}

// Duration returns the bar length for the resolution, or 0 when unknown.
func (r Resolution) Duration() time.Duration {
	switch r {
	case ResolutionSecond:
		return time.Second
	case ResolutionMinute:
		return time.Minute
	case ResolutionHour:
		return time.Hour
	case ResolutionDaily:
		return 24 * time.Hour
	default:
		return 0
	}
}

// IsValid reports whether r is one of the known resolutions.
func (r Resolution) IsValid() bool {
	return r.Duration() > 0
}

// ParseResolution parses a resolution name. Matching is case-insensitive and
// accepts "day" as an alias for daily.
func ParseResolution(value string) (Resolution, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "day" {
		normalized = string(ResolutionDaily)
	}

	resolution := Resolution(normalized)
	if !resolution.IsValid() {
		return "", fmt.Errorf("unsupported resolution: %q", value)
	}

	return resolution, nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Resolution) UnmarshalText(text []byte) error {
	resolution, err := ParseResolution(string(text))
	if err != nil {
		return err
	}

	*r = resolution

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (r Resolution) MarshalText() ([]byte, error) {
	return []byte(r), nil
}
