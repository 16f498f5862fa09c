package config

import "time"

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

var globalConfig *Config

func Global() *Config {
	return globalConfig
}

func SetGlobal(cfg *Config) {
	globalConfig = cfg
}

type Config struct {
	Env     string `env:"ENV" env-required:"true"`
	HTTP    HTTPConfig
	Home    HomeConfig
	Removal RemovalConfig
}

type HTTPConfig struct {
	Host            string        `env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port            string        `env:"HTTP_PORT" env-default:"8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

type HomeConfig struct {
	DisplayName string        `env:"HOME_DISPLAY_NAME" env-default:"Planner"`
	TimeZone    string        `env:"HOME_TIME_ZONE" env-default:"Local"`
	ClockTick   time.Duration `env:"HOME_CLOCK_TICK" env-default:"1s"`
}

// Location resolves TimeZone; "Local" and "" mean the host zone.
func (c HomeConfig) Location() (*time.Location, error) {
	if c.TimeZone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.TimeZone)
}

type RemovalConfig struct {
	ConfirmationTTL time.Duration `env:"REMOVAL_CONFIRMATION_TTL" env-default:"5m"`
}
