package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseLifetime accepts Go durations ("12h", "90m") as well as whole days ("7d").
func ParseLifetime(val string) (time.Duration, error) {
	val = strings.TrimSpace(val)
	if val == "" {
		return 0, errors.New("empty lifetime")
	}
	if strings.HasSuffix(val, "d") {
		days, err := strconv.Atoi(strings.TrimSuffix(val, "d"))
		if err != nil {
			return 0, fmt.Errorf("invalid lifetime %q: %w", val, err)
		}
		if days <= 0 {
			return 0, fmt.Errorf("invalid lifetime %q: must be positive", val)
		}
		return time.Duration(days) * 24 * time.Hour, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("invalid lifetime %q: %w", val, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid lifetime %q: must be positive", val)
	}
	return d, nil
}

func (a AuthConfig) TokenLifetimeDuration() time.Duration {
	d, err := ParseLifetime(a.TokenLifetime)
	if err != nil {
		return 7 * 24 * time.Hour
	}
	return d
}
