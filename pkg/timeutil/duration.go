// Package timeutil reads and prints the short interval strings used in
// configuration and on the command line.
package timeutil

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultInterval is the reminder wake interval and tolerance used when none
// is configured.
const DefaultInterval = "1m"

const day = 24 * time.Hour

var (
	errNotPositive = errors.New("duration must be greater than zero")

	// One "<count><unit>" run, spaces allowed around the unit.
	token = regexp.MustCompile(`(\d+)\s*([a-z]+)\s*`)

	units = map[string]time.Duration{}

	// Largest first; FormatInterval walks these in order.
	labels = []struct {
		label string
		value time.Duration
	}{
		{"d", day},
		{"h", time.Hour},
		{"m", time.Minute},
		{"s", time.Second},
	}
)

func init() {
	for value, names := range map[time.Duration][]string{
		time.Second: {"s", "sec", "secs", "second", "seconds"},
		time.Minute: {"m", "min", "mins", "minute", "minutes"},
		time.Hour:   {"h", "hr", "hrs", "hour", "hours"},
		day:         {"d", "day", "days"},
	} {
		for _, n := range names {
			units[n] = value
		}
	}
}

// ParseInterval accepts anything time.ParseDuration does plus spelled-out
// units and days ("2 mins", "1d2h"). It returns the duration and its
// FormatInterval label. Empty input means DefaultInterval.
func ParseInterval(input string) (time.Duration, string, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		s = DefaultInterval
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		if d, err = parseSpelled(s); err != nil {
			return 0, "", err
		}
	}
	if d <= 0 {
		return 0, "", errNotPositive
	}
	return d, FormatInterval(d), nil
}

func parseSpelled(s string) (time.Duration, error) {
	var total time.Duration
	consumed := 0
	for _, loc := range token.FindAllStringSubmatchIndex(s, -1) {
		if loc[0] != consumed {
			return 0, fmt.Errorf("invalid duration segment %q", strings.TrimSpace(s[consumed:]))
		}
		count, err := strconv.ParseInt(s[loc[2]:loc[3]], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid duration value %q: %w", s[loc[2]:loc[3]], err)
		}
		unit, ok := units[s[loc[4]:loc[5]]]
		if !ok {
			return 0, fmt.Errorf("unsupported duration unit %q", s[loc[4]:loc[5]])
		}
		total += time.Duration(count) * unit
		consumed = loc[1]
	}
	if consumed != len(s) {
		return 0, fmt.Errorf("invalid duration segment %q", strings.TrimSpace(s[consumed:]))
	}
	return total, nil
}

// FormatInterval prints d with d/h/m/s tokens, dropping sub-second parts.
func FormatInterval(d time.Duration) string {
	var b strings.Builder
	for _, l := range labels {
		if n := d / l.value; n > 0 {
			fmt.Fprintf(&b, "%d%s", n, l.label)
			d -= n * l.value
		}
	}
	if b.Len() == 0 {
		return "0s"
	}
	return b.String()
}
