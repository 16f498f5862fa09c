package app

import (
	"github.com/jonboulle/clockwork"

	"github.com/adanyl0v/go-planner/internal/config"
	"github.com/adanyl0v/go-planner/internal/services"
	"github.com/adanyl0v/go-planner/internal/store"
)

var (
	globalClock    clockwork.Clock
	globalServices struct {
		tasks    services.TaskService
		notes    services.NoteService
		removals services.RemovalService
		clock    services.ClockService
	}
)

// MustInitServices builds the in-memory stores and the services on top of
// them. State lives for the lifetime of the process.
func MustInitServices() {
	cfg := config.Global()
	globalClock = clockwork.NewRealClock()

	location, err := cfg.Home.Location()
	if err != nil {
		globalLogger.Error().
			Err(err).
			Str("time_zone", cfg.Home.TimeZone).
			Msg("failed to load time zone")
		panic(err)
	}

	tasks := store.NewTaskStore(globalClock)
	notes := store.NewNoteStore()

	globalServices.tasks = services.NewTaskService(globalLogger, globalClock, tasks)
	globalServices.notes = services.NewNoteService(globalLogger, notes)
	globalServices.removals = services.NewRemovalService(
		globalLogger,
		globalClock,
		cfg.Removal.ConfirmationTTL,
		tasks,
		notes,
	)
	globalServices.clock = services.NewClockService(
		globalClock,
		location,
		cfg.Home.ClockTick,
		cfg.Home.DisplayName,
	)

	globalLogger.Info().
		Str("time_zone", location.String()).
		Dur("removal_ttl", cfg.Removal.ConfirmationTTL).
		Msg("initialized services")
}
