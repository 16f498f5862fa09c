package services

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/adanyl0v/go-planner/internal/models"
)

const clockLayout = "15:04:05"

type clockServiceImpl struct {
	clock       clockwork.Clock
	location    *time.Location
	tick        time.Duration
	displayName string
}

func NewClockService(
	clock clockwork.Clock,
	location *time.Location,
	tick time.Duration,
	displayName string,
) ClockService {
	return &clockServiceImpl{
		clock:       clock,
		location:    location,
		tick:        tick,
		displayName: displayName,
	}
}

func (s *clockServiceImpl) Now() models.ClockReading {
	return s.reading(s.clock.Now())
}

func (s *clockServiceImpl) Location() *time.Location {
	return s.location
}

func (s *clockServiceImpl) Watch(ctx context.Context) <-chan models.ClockReading {
	readings := make(chan models.ClockReading)

	go func() {
		defer close(readings)

		ticker := s.clock.NewTicker(s.tick)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case t := <-ticker.Chan():
				select {
				case readings <- s.reading(t):
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return readings
}

func (s *clockServiceImpl) reading(t time.Time) models.ClockReading {
	t = t.In(s.location)
	return models.ClockReading{
		DisplayName: s.displayName,
		Time:        t.Format(clockLayout),
		Now:         t,
	}
}
