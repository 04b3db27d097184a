package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Dushyant778/ecofarm/internal/config"
)

// TestSetupValidLevels verifies a logger is produced for every supported
// level, case-insensitively.
func TestSetupValidLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "DEBUG", "Info"} {
		log := Setup(config.ServerConfig{Port: 8080, LogLevel: level})
		assert.NotNil(t, log, "level %q", level)
	}
}

// TestSetupInvalidLevelFallsBack verifies an unknown level still yields a
// usable logger rather than an error.
func TestSetupInvalidLevelFallsBack(t *testing.T) {
	log := Setup(config.ServerConfig{Port: 8080, LogLevel: "verbose"})
	assert.NotNil(t, log)
}
