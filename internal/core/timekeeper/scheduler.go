package timekeeper

import (
	"log/slog"
	"time"

	"pomodoro/internal/core/model"
)

const (
	longBreakEvery  = 8
	shortBreakEvery = 2
)

// Config contains runtime options for the Scheduler.
type Config struct {
	// Tick is the length of one countdown unit. Defaults to one second.
	Tick   time.Duration
	Logger *slog.Logger
}

// Scheduler sequences work and break sessions and owns the single live
// countdown. Like Countdown, it must only be used from the Clock's control
// thread.
type Scheduler struct {
	port    PresentationPort
	clock   Clock
	options Config
	logger  *slog.Logger

	reps      int
	active    *Countdown
	observers []func(model.SessionKind)
}

// New creates an idle Scheduler.
func New(port PresentationPort, clock Clock, options Config) *Scheduler {
	if options.Tick <= 0 {
		options.Tick = time.Second
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		port:    port,
		clock:   clock,
		options: options,
		logger:  logger,
	}
}

// NextKind returns the session kind for the given 1-based repetition.
func NextKind(rep int) model.SessionKind {
	switch {
	case rep%longBreakEvery == 0:
		return model.LongBreak
	case rep%shortBreakEvery == 0:
		return model.ShortBreak
	default:
		return model.Work
	}
}

// OnSessionStart registers a callback fired each time a session begins.
func (scheduler *Scheduler) OnSessionStart(handler func(model.SessionKind)) {
	if handler == nil {
		return
	}
	scheduler.observers = append(scheduler.observers, handler)
}

// Start advances to the next session, abandoning the current one if any.
func (scheduler *Scheduler) Start() {
	scheduler.reps++
	kind := NextKind(scheduler.reps)
	scheduler.cancelActive()

	countdown := NewCountdown(scheduler.clock, scheduler.port, scheduler.options.Tick, nil)
	countdown.onComplete = func() {
		scheduler.handleComplete(countdown)
	}
	scheduler.active = countdown

	scheduler.logger.Debug("session started",
		slog.String("kind", kind.String()),
		slog.Int("rep", scheduler.reps),
	)

	scheduler.port.DisplaySessionLabel(kind.Label(), kind.Style())
	for _, observer := range scheduler.observers {
		observer(kind)
	}
	countdown.Begin(kind.Seconds(), kind)
}

// Reset stops the active countdown and returns to the idle state.
func (scheduler *Scheduler) Reset() {
	scheduler.cancelActive()
	scheduler.reps = 0

	scheduler.logger.Info("timer reset")

	scheduler.port.DisplayIdle()
	scheduler.port.DisplayProgressMarks(0)
}

// CompletedPairs is the number of work and break pairs represented by reps.
func (scheduler *Scheduler) CompletedPairs() int {
	return scheduler.reps / 2
}

func (scheduler *Scheduler) Reps() int {
	return scheduler.reps
}

// Current returns the kind of the running session.
func (scheduler *Scheduler) Current() (model.SessionKind, bool) {
	if scheduler.active == nil || scheduler.active.State() != CountdownRunning {
		return model.Idle, false
	}
	return scheduler.active.Kind(), true
}

// Remaining returns the seconds left in the running session, or 0 when idle.
func (scheduler *Scheduler) Remaining() int {
	if scheduler.active == nil || scheduler.active.State() != CountdownRunning {
		return 0
	}
	return scheduler.active.Remaining()
}

func (scheduler *Scheduler) handleComplete(countdown *Countdown) {
	if scheduler.active != countdown {
		return
	}
	scheduler.active = nil

	scheduler.logger.Debug("session completed",
		slog.String("kind", countdown.Kind().String()),
		slog.Int("rep", scheduler.reps),
	)

	scheduler.Start()
	scheduler.port.DisplayProgressMarks(scheduler.CompletedPairs())
}

func (scheduler *Scheduler) cancelActive() {
	if scheduler.active == nil {
		return
	}
	scheduler.active.Cancel()
	scheduler.active = nil
}
