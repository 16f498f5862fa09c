package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Reader interface {
	Read() (*Config, error)
}

type EnvReader struct{}

func NewEnvReader() EnvReader {
	return EnvReader{}
}

func (EnvReader) Read() (*Config, error) {
	cfg := new(Config)
	err := cleanenv.ReadEnv(cfg)
	if err != nil {
		return nil, err
	}

	err = cfg.validate()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Env {
	case EnvDev, EnvProd, EnvLocal:
	default:
		return fmt.Errorf("unknown env: %s", c.Env)
	}
	if c.Home.ClockTick <= 0 {
		return errors.New("HOME_CLOCK_TICK must be positive")
	}
	if c.Removal.ConfirmationTTL <= 0 {
		return errors.New("REMOVAL_CONFIRMATION_TTL must be positive")
	}
	if _, err := c.Home.Location(); err != nil {
		return fmt.Errorf("invalid HOME_TIME_ZONE: %w", err)
	}
	return nil
}
