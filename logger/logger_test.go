package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestSetupLevels(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	Setup("debug", false)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	Setup("warn", true)
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	Setup("loud", false)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	Setup("", false)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestComponentTagsEvents(t *testing.T) {
	defer func(l zerolog.Logger) { log.Logger = l }(log.Logger)
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	Component("form").Info().Str("date", "2024-06-10").Msg("Prediction failed")

	assert.JSONEq(t, `{"level":"info","component":"form","date":"2024-06-10","message":"Prediction failed"}`, buf.String())
}
