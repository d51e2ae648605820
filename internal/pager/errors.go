package pager

import (
	"errors"
	"fmt"
	"strings"
)

// ErrTerminalUnavailable is returned when no terminal geometry could be
// probed and the fallback policy is FallbackFail.
var ErrTerminalUnavailable = errors.New("terminal unavailable")

// Fallback selects what a session does when the terminal cannot be probed.
type Fallback string

const (
	// FallbackFail returns ErrTerminalUnavailable before any output.
	FallbackFail Fallback = "fail"
	// FallbackDefault pages with the configured default height.
	FallbackDefault Fallback = "default"
	// FallbackDump writes every row without prompting.
	FallbackDump Fallback = "dump"
)

// Fallbacks lists the accepted policies in display order.
var Fallbacks = []Fallback{FallbackFail, FallbackDefault, FallbackDump}

// ParseFallback parses a policy name.
func ParseFallback(s string) (Fallback, error) {
	f := Fallback(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Fallbacks {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("invalid fallback %q (expected fail, default or dump)", s)
}
