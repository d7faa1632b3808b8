package logger_test

import (
	"bytes"
	"errors"
	"io"
	"seatpos/config"
	"seatpos/shared/logger"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

// restore puts the global logger, level and time format back after a test.
func restore(t *testing.T) {
	t.Helper()

	originalLogger := log.Logger
	originalLevel := zerolog.GlobalLevel()
	originalTimeFormat := zerolog.TimeFieldFormat

	t.Cleanup(func() {
		log.Logger = originalLogger
		zerolog.SetGlobalLevel(originalLevel)
		zerolog.TimeFieldFormat = originalTimeFormat
	})
}

func TestInitLogger(t *testing.T) {
	restore(t)

	logger.InitLogger()

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestErrorWithStack(t *testing.T) {
	restore(t)

	var buf bytes.Buffer
	log.Logger = log.Output(&buf)

	logger.ErrorWithStack(errors.New("remote closed the connection"))

	assert.Contains(t, buf.String(), "remote closed the connection")
	assert.Contains(t, buf.String(), `"level":"error"`)
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		logLevel string
		want     zerolog.Level
	}{
		{logLevel: "debug", want: zerolog.DebugLevel},
		{logLevel: "info", want: zerolog.InfoLevel},
		{logLevel: "warn", want: zerolog.WarnLevel},
		{logLevel: "disabled", want: zerolog.Disabled},
		{logLevel: "loud", want: zerolog.TraceLevel},
		// ParseLevel("") is NoLevel without an error
		{logLevel: "", want: zerolog.NoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.logLevel, func(t *testing.T) {
			restore(t)

			log.Logger = log.Output(io.Discard)

			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.logLevel

			logger.SetLogLevel(cfg)

			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestUseProductionOutput(t *testing.T) {
	restore(t)

	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var buf bytes.Buffer

	cfg := &config.Config{}
	cfg.Server.Env = "development"
	cfg.App.Name = "seatpos"

	log.Logger = log.Output(io.Discard)
	logger.UseProductionOutput(cfg, &buf)
	log.Info().Msg("console only")

	assert.Zero(t, buf.Len(), "development keeps the console writer")

	cfg.Server.Env = "production"
	logger.UseProductionOutput(cfg, &buf)
	log.Info().Msg("json line")

	assert.Contains(t, buf.String(), `"app":"seatpos"`)
	assert.Contains(t, buf.String(), `"message":"json line"`)
}
