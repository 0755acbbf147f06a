package timekeeper

import (
	"fmt"
	"time"

	"pomodoro/internal/core/model"
)

// Countdown runs one session down to zero, one unit per tick.
// It is not safe for concurrent use; every call must come from the
// goroutine that runs the Clock callbacks.
type Countdown struct {
	clock      Clock
	port       PresentationPort
	unit       time.Duration
	onComplete func()

	kind      model.SessionKind
	remaining int
	state     CountdownState
	handle    Handle
}

// NewCountdown creates an idle countdown. onComplete may be nil.
func NewCountdown(clock Clock, port PresentationPort, unit time.Duration, onComplete func()) *Countdown {
	if unit <= 0 {
		unit = time.Second
	}
	return &Countdown{
		clock:      clock,
		port:       port,
		unit:       unit,
		onComplete: onComplete,
		state:      CountdownIdle,
	}
}

// Begin starts counting down from durationSeconds. A countdown can only be
// begun once; later calls are ignored.
func (countdown *Countdown) Begin(durationSeconds int, kind model.SessionKind) {
	if countdown.state != CountdownIdle {
		return
	}
	countdown.kind = kind
	countdown.state = CountdownRunning

	if durationSeconds <= 0 {
		countdown.remaining = 0
		countdown.complete()
		return
	}

	countdown.remaining = durationSeconds
	countdown.port.DisplayTime(FormatClock(countdown.remaining))
	countdown.scheduleNext()
}

// Cancel withdraws the pending tick. Calling it more than once, or after
// completion, has no effect.
func (countdown *Countdown) Cancel() {
	if countdown.state.Terminal() {
		return
	}
	if countdown.handle != 0 {
		countdown.clock.Cancel(countdown.handle)
		countdown.handle = 0
	}
	countdown.state = CountdownCancelled
}

func (countdown *Countdown) Kind() model.SessionKind {
	return countdown.kind
}

func (countdown *Countdown) Remaining() int {
	return countdown.remaining
}

func (countdown *Countdown) State() CountdownState {
	return countdown.state
}

func (countdown *Countdown) scheduleNext() {
	var handle Handle
	handle = countdown.clock.Schedule(countdown.unit, func() {
		countdown.tick(handle)
	})
	countdown.handle = handle
}

func (countdown *Countdown) tick(handle Handle) {
	// Clocks may deliver a callback that was already in flight when Cancel ran.
	if countdown.state != CountdownRunning || handle != countdown.handle {
		return
	}
	countdown.handle = 0

	countdown.remaining--
	if countdown.remaining >= 0 {
		countdown.port.DisplayTime(FormatClock(countdown.remaining))
	}
	if countdown.remaining > 0 {
		countdown.scheduleNext()
		return
	}
	countdown.complete()
}

func (countdown *Countdown) complete() {
	countdown.remaining = 0
	countdown.handle = 0
	countdown.state = CountdownCompleted
	if countdown.onComplete != nil {
		countdown.onComplete()
	}
}

// FormatClock renders seconds as MM:SS. Minutes grow past two digits when
// needed; negative values render as 00:00.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
