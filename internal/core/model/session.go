package model

import "time"

// SessionKind identifies what a single timed interval is for.
type SessionKind int

const (
	Idle SessionKind = iota
	Work
	ShortBreak
	LongBreak
)

// Style tells a frontend how to paint a session label.
type Style int

const (
	StyleIdle Style = iota
	StyleWork
	StyleShortBreak
	StyleLongBreak
)

const (
	WorkSeconds       = 25 * 60
	ShortBreakSeconds = 5 * 60
	LongBreakSeconds  = 20 * 60
)

// Seconds returns the fixed length of the session.
func (kind SessionKind) Seconds() int {
	switch kind {
	case Work:
		return WorkSeconds
	case ShortBreak:
		return ShortBreakSeconds
	case LongBreak:
		return LongBreakSeconds
	default:
		return 0
	}
}

// Duration returns Seconds as a time.Duration.
func (kind SessionKind) Duration() time.Duration {
	return time.Duration(kind.Seconds()) * time.Second
}

// Label returns the heading shown while the session runs.
func (kind SessionKind) Label() string {
	switch kind {
	case Work:
		return "Work"
	case ShortBreak, LongBreak:
		return "Break"
	default:
		return "Timer"
	}
}

func (kind SessionKind) Style() Style {
	switch kind {
	case Work:
		return StyleWork
	case ShortBreak:
		return StyleShortBreak
	case LongBreak:
		return StyleLongBreak
	default:
		return StyleIdle
	}
}

func (kind SessionKind) IsBreak() bool {
	return kind == ShortBreak || kind == LongBreak
}

func (kind SessionKind) String() string {
	switch kind {
	case Work:
		return "work"
	case ShortBreak:
		return "short_break"
	case LongBreak:
		return "long_break"
	default:
		return "idle"
	}
}
