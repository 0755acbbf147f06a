package timekeeper

import (
	"sort"
	"time"

	"pomodoro/internal/core/model"
)

type manualTimer struct {
	handle   Handle
	at       time.Duration
	callback func()
}

// manualClock runs callbacks against virtual time advanced by the test.
type manualClock struct {
	now     time.Duration
	nextID  Handle
	pending map[Handle]manualTimer
	// ignoreCancel simulates a clock whose callbacks can still fire after Cancel.
	ignoreCancel bool
}

func newManualClock() *manualClock {
	return &manualClock{pending: make(map[Handle]manualTimer)}
}

func (clock *manualClock) Schedule(after time.Duration, callback func()) Handle {
	clock.nextID++
	clock.pending[clock.nextID] = manualTimer{
		handle:   clock.nextID,
		at:       clock.now + after,
		callback: callback,
	}
	return clock.nextID
}

func (clock *manualClock) Cancel(handle Handle) {
	if clock.ignoreCancel {
		return
	}
	delete(clock.pending, handle)
}

// Advance moves time forward by delta, firing due callbacks in order.
func (clock *manualClock) Advance(delta time.Duration) {
	target := clock.now + delta
	for {
		next, ok := clock.nextDue(target)
		if !ok {
			break
		}
		delete(clock.pending, next.handle)
		clock.now = next.at
		next.callback()
	}
	clock.now = target
}

func (clock *manualClock) Pending() int {
	return len(clock.pending)
}

func (clock *manualClock) nextDue(target time.Duration) (manualTimer, bool) {
	due := make([]manualTimer, 0, len(clock.pending))
	for _, timer := range clock.pending {
		if timer.at <= target {
			due = append(due, timer)
		}
	}
	if len(due) == 0 {
		return manualTimer{}, false
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].at == due[j].at {
			return due[i].handle < due[j].handle
		}
		return due[i].at < due[j].at
	})
	return due[0], true
}

type labelCall struct {
	text  string
	style model.Style
}

type recordingPort struct {
	times  []string
	labels []labelCall
	marks  []int
	idle   int
}

func (port *recordingPort) DisplayTime(text string) {
	port.times = append(port.times, text)
}

func (port *recordingPort) DisplaySessionLabel(text string, style model.Style) {
	port.labels = append(port.labels, labelCall{text: text, style: style})
}

func (port *recordingPort) DisplayProgressMarks(count int) {
	port.marks = append(port.marks, count)
}

func (port *recordingPort) DisplayIdle() {
	port.idle++
}

func (port *recordingPort) lastTime() string {
	if len(port.times) == 0 {
		return ""
	}
	return port.times[len(port.times)-1]
}

func (port *recordingPort) lastMarks() int {
	if len(port.marks) == 0 {
		return -1
	}
	return port.marks[len(port.marks)-1]
}
