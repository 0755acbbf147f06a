package timekeeper

import (
	"context"
	"sync"
	"time"
)

// Loop is a Clock backed by one goroutine. Commands and timer callbacks are
// queued and executed in order by Run, so state touched only from Loop
// callbacks needs no further locking.
type Loop struct {
	queue    chan func()
	done     chan struct{}
	stopOnce sync.Once

	mu     sync.Mutex
	nextID Handle
	timers map[Handle]*time.Timer
}

// NewLoop creates a loop with the given queue capacity.
func NewLoop(buffer int) *Loop {
	if buffer <= 0 {
		buffer = 16
	}
	return &Loop{
		queue:  make(chan func(), buffer),
		done:   make(chan struct{}),
		timers: make(map[Handle]*time.Timer),
	}
}

// Run executes queued callbacks until ctx is cancelled. Pending timers are
// stopped on return.
func (loop *Loop) Run(ctx context.Context) {
	defer loop.stop()
	for {
		select {
		case <-ctx.Done():
			return
		case fn := <-loop.queue:
			fn()
		}
	}
}

// Post queues fn to run on the loop goroutine. It returns false once the
// loop has stopped.
func (loop *Loop) Post(fn func()) bool {
	select {
	case <-loop.done:
		return false
	default:
	}
	select {
	case loop.queue <- fn:
		return true
	case <-loop.done:
		return false
	}
}

// Schedule arms a timer that posts callback back onto the loop.
func (loop *Loop) Schedule(after time.Duration, callback func()) Handle {
	loop.mu.Lock()
	defer loop.mu.Unlock()

	loop.nextID++
	handle := loop.nextID
	loop.timers[handle] = time.AfterFunc(after, func() {
		loop.Post(func() {
			loop.fire(handle, callback)
		})
	})
	return handle
}

// Cancel stops the timer for handle. A timer that already fired but whose
// callback is still queued is dropped when it reaches the front.
func (loop *Loop) Cancel(handle Handle) {
	loop.mu.Lock()
	defer loop.mu.Unlock()

	timer, ok := loop.timers[handle]
	if !ok {
		return
	}
	timer.Stop()
	delete(loop.timers, handle)
}

// Pending reports how many scheduled callbacks are still live.
func (loop *Loop) Pending() int {
	loop.mu.Lock()
	defer loop.mu.Unlock()
	return len(loop.timers)
}

func (loop *Loop) fire(handle Handle, callback func()) {
	loop.mu.Lock()
	_, live := loop.timers[handle]
	delete(loop.timers, handle)
	loop.mu.Unlock()

	if live {
		callback()
	}
}

func (loop *Loop) stop() {
	loop.stopOnce.Do(func() {
		close(loop.done)
		loop.mu.Lock()
		for handle, timer := range loop.timers {
			timer.Stop()
			delete(loop.timers, handle)
		}
		loop.mu.Unlock()
	})
}
