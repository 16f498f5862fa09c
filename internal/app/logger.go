package app

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-planner/internal/config"
)

const serviceName = "planner"

var globalLogger zerolog.Logger

var envLogLevels = map[string]zerolog.Level{
	config.EnvDev:   zerolog.DebugLevel,
	config.EnvProd:  zerolog.InfoLevel,
	config.EnvLocal: zerolog.TraceLevel,
}

func InitDefaultLogger() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	zerolog.TimestampFieldName = "timestamp"
	zerolog.DurationFieldUnit = time.Millisecond

	globalLogger = zerolog.New(os.Stdout).
		With().
		Timestamp().
		Caller().
		Str("service", serviceName).
		Int("pid", os.Getpid()).
		Logger()

	globalLogger.Info().Msg("initialized default logger")
}

// MustInitApplicationLogger switches level and output to the ones of the
// configured env. Local runs get a human readable console writer.
func MustInitApplicationLogger() {
	cfg := config.Global()

	level, ok := envLogLevels[cfg.Env]
	if !ok {
		globalLogger.Error().
			Str("env", cfg.Env).
			Msg("unknown env")
		panic("unknown env: " + cfg.Env)
	}
	zerolog.SetGlobalLevel(level)

	w := io.Writer(os.Stdout)
	if cfg.Env == config.EnvLocal {
		consoleWriter := zerolog.NewConsoleWriter()
		consoleWriter.TimeFormat = time.DateTime
		consoleWriter.Out = os.Stdout
		w = consoleWriter
	}

	globalLogger = globalLogger.Output(w)
	globalLogger.Info().
		Str("level", level.String()).
		Msg("initialized application logger")
}
