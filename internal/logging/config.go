// Package logging owns process-wide log configuration: a runtime profile for
// the binaries and a quiet-by-default test profile, both overridable through
// the environment.
package logging

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

const (
	EnvLogLevel   = "GLIDECTL_LOG_LEVEL"
	EnvLogNoColor = "GLIDECTL_LOG_NOCOLOR"
)

type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileTest
)

var configureOnce sync.Once

func ConfigureRuntime() Profile {
	return Configure(ProfileRuntime)
}

func ConfigureTests() Profile {
	return Configure(ProfileTest)
}

func Configure(profile Profile) Profile {
	configureOnce.Do(func() {
		zerolog.SetGlobalLevel(Level(profile))
	})
	return profile
}

// Level resolves the effective log level for a profile, honoring the
// GLIDECTL_LOG_LEVEL override.
func Level(profile Profile) zerolog.Level {
	if lvl, ok := ParseLevel(os.Getenv(EnvLogLevel)); ok {
		return lvl
	}
	if profile == ProfileTest {
		return zerolog.WarnLevel
	}
	return zerolog.InfoLevel
}

// NoColor reports whether console color output is disabled via environment.
func NoColor() bool {
	v, ok := parseBool(os.Getenv(EnvLogNoColor))
	return ok && v
}

func ParseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.InfoLevel, false
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "disable", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
