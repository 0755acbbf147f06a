package timekeeper

// CountdownState is the lifecycle position of a single Countdown.
type CountdownState string

const (
	CountdownIdle      CountdownState = "idle"
	CountdownRunning   CountdownState = "running"
	CountdownCompleted CountdownState = "completed"
	CountdownCancelled CountdownState = "cancelled"
)

// Terminal reports whether the countdown can no longer tick.
func (state CountdownState) Terminal() bool {
	return state == CountdownCompleted || state == CountdownCancelled
}
