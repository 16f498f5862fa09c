package app

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/adanyl0v/go-planner/internal/config"
)

func MustReadEnv() {
	cfg, err := config.NewEnvReader().Read()
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to read env")
		panic(err)
	}
	globalLogger.Info().
		Str("env", cfg.Env).
		Str("time_zone", cfg.Home.TimeZone).
		Dur("clock_tick", cfg.Home.ClockTick).
		Msg("read env")

	config.SetGlobal(cfg)
}
