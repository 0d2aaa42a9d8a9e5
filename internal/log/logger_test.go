package log

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewLevelParsing(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, New("debug", FormatJSON).GetLevel())
	assert.Equal(t, zerolog.WarnLevel, New("WARNING", FormatConsole).GetLevel())
	assert.Equal(t, zerolog.ErrorLevel, New("error", FormatConsole).GetLevel())
}

func TestNewUnknownLevelFallsBackToInfo(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, New("bogus", FormatConsole).GetLevel())
	assert.Equal(t, zerolog.InfoLevel, New("", FormatJSON).GetLevel())
}
