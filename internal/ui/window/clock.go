package window

import (
	"sync"
	"time"

	"pomodoro/internal/core/timekeeper"

	"fyne.io/fyne/v2"
)

// MainClock is a timekeeper.Clock whose callbacks run on the Fyne main
// goroutine, next to button handlers and widget updates.
type MainClock struct {
	dispatch func(func())

	mu     sync.Mutex
	nextID timekeeper.Handle
	timers map[timekeeper.Handle]*time.Timer
}

// NewMainClock creates a clock that re-enters the UI thread with fyne.Do.
func NewMainClock() *MainClock {
	return newMainClock(fyne.Do)
}

func newMainClock(dispatch func(func())) *MainClock {
	return &MainClock{
		dispatch: dispatch,
		timers:   make(map[timekeeper.Handle]*time.Timer),
	}
}

func (clock *MainClock) Schedule(after time.Duration, callback func()) timekeeper.Handle {
	clock.mu.Lock()
	defer clock.mu.Unlock()

	clock.nextID++
	handle := clock.nextID
	clock.timers[handle] = time.AfterFunc(after, func() {
		clock.dispatch(func() {
			clock.fire(handle, callback)
		})
	})
	return handle
}

func (clock *MainClock) Cancel(handle timekeeper.Handle) {
	clock.mu.Lock()
	defer clock.mu.Unlock()

	if timer, ok := clock.timers[handle]; ok {
		timer.Stop()
		delete(clock.timers, handle)
	}
}

// Stop cancels every pending callback.
func (clock *MainClock) Stop() {
	clock.mu.Lock()
	defer clock.mu.Unlock()

	for handle, timer := range clock.timers {
		timer.Stop()
		delete(clock.timers, handle)
	}
}

func (clock *MainClock) fire(handle timekeeper.Handle, callback func()) {
	clock.mu.Lock()
	_, live := clock.timers[handle]
	delete(clock.timers, handle)
	clock.mu.Unlock()

	if live {
		callback()
	}
}
