package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	casos := map[string]zerolog.Level{
		"debug":        zerolog.DebugLevel,
		"info":         zerolog.InfoLevel,
		"warn":         zerolog.WarnLevel,
		"error":        zerolog.ErrorLevel,
		"":             zerolog.InfoLevel,
		"inexistente":  zerolog.InfoLevel,
	}
	for entrada, esperado := range casos {
		assert.Equal(t, esperado, parseLevel(entrada), "nivel %q", entrada)
	}
}

func TestNew_FiltraPorNivel(t *testing.T) {
	l := New(Config{Env: "production", Level: "error"})
	require.NotNil(t, l)

	assert.False(t, l.Info().Enabled(), "con nivel error, info debe quedar filtrado")
	assert.True(t, l.Error().Enabled())
}
