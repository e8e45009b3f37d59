// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argtree

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/google/uuid"
)

// ConvertFunc converts a raw command-line token into a typed value.
// Converters must be pure: no side effects, same result for same input.
type ConvertFunc[T any] func(raw string) (T, error)

// Port is a uint16 for IP ports. Use PortInRange to restrict the
// accepted range of a port-valued option.
type Port uint16

// Date and clock layouts accepted by the canonical time converters.
const (
	dateLayout       = "2006-01-02"
	clockLayout      = "15:04:05"
	clockLayoutShort = "15:04"
)

// Text is the identity converter. It never fails.
func Text(raw string) (string, error) {
	return raw, nil
}

// Int converts a base-10 integer token. Overflow is an error.
func Int(raw string) (int, error) {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("not a base-10 integer")
	}
	return v, nil
}

// Float32 converts a decimal floating-point token.
func Float32(raw string) (float32, error) {
	v, err := strconv.ParseFloat(raw, 32)
	if err != nil {
		return 0, fmt.Errorf("not a 32-bit float")
	}
	return float32(v), nil
}

// Float64 converts a decimal floating-point token.
func Float64(raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("not a 64-bit float")
	}
	return v, nil
}

// Bool accepts "true" and "false", case-insensitively. Any other token is
// a conversion failure, never false.
func Bool(raw string) (bool, error) {
	switch {
	case strings.EqualFold(raw, "true"):
		return true, nil
	case strings.EqualFold(raw, "false"):
		return false, nil
	}
	return false, fmt.Errorf("not a boolean (want true or false)")
}

// Date converts an ISO-8601 calendar date (YYYY-MM-DD).
func Date(raw string) (time.Time, error) {
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("not a date (want YYYY-MM-DD)")
	}
	return t, nil
}

// Clock converts an ISO-8601 wall-clock time (HH:MM:SS, seconds
// optional). The returned time carries the zero date.
func Clock(raw string) (time.Time, error) {
	if t, err := time.Parse(clockLayout, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(clockLayoutShort, raw); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("not a time (want HH:MM:SS or HH:MM)")
}

// Duration converts a Go duration token such as "1h30m".
func Duration(raw string) (time.Duration, error) {
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("not a duration (e.g. 30s, 1h30m)")
	}
	return d, nil
}

// URL converts an absolute URL token.
func URL(raw string) (url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return url.URL{}, fmt.Errorf("not a URL")
	}
	if !u.IsAbs() {
		return url.URL{}, fmt.Errorf("not an absolute URL")
	}
	return *u, nil
}

// PortValue converts a port number in 0-65535.
func PortValue(raw string) (Port, error) {
	v, err := strconv.ParseUint(raw, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("not a port (want 0-65535)")
	}
	return Port(v), nil
}

// PortInRange returns a port converter restricted to [lo, hi].
func PortInRange(lo, hi Port) ConvertFunc[Port] {
	return func(raw string) (Port, error) {
		p, err := PortValue(raw)
		if err != nil {
			return 0, err
		}
		if p < lo || p > hi {
			return 0, fmt.Errorf("port %d outside allowed range %d-%d", p, lo, hi)
		}
		return p, nil
	}
}

// Semver converts a semantic version token such as "1.2.3-rc.1".
func Semver(raw string) (*semver.Version, error) {
	v, err := semver.NewVersion(raw)
	if err != nil {
		return nil, fmt.Errorf("not a semantic version")
	}
	return v, nil
}

// UUID converts an RFC 4122 UUID token.
func UUID(raw string) (uuid.UUID, error) {
	u, err := uuid.Parse(raw)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("not a UUID")
	}
	return u, nil
}

// canonicalFor returns the canonical converter for T, if one exists.
func canonicalFor[T any]() (ConvertFunc[T], bool) {
	var zero T
	var fn any
	switch any(zero).(type) {
	case string:
		fn = ConvertFunc[string](Text)
	case int:
		fn = ConvertFunc[int](Int)
	case float32:
		fn = ConvertFunc[float32](Float32)
	case float64:
		fn = ConvertFunc[float64](Float64)
	case bool:
		fn = ConvertFunc[bool](Bool)
	case time.Time:
		fn = ConvertFunc[time.Time](Date)
	case time.Duration:
		fn = ConvertFunc[time.Duration](Duration)
	case url.URL:
		fn = ConvertFunc[url.URL](URL)
	case Port:
		fn = ConvertFunc[Port](PortValue)
	case *semver.Version:
		fn = ConvertFunc[*semver.Version](Semver)
	case uuid.UUID:
		fn = ConvertFunc[uuid.UUID](UUID)
	default:
		return nil, false
	}
	c, ok := fn.(ConvertFunc[T])
	return c, ok
}
