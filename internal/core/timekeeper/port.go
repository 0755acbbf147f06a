package timekeeper

import "pomodoro/internal/core/model"

//go:generate mockgen -source=port.go -destination=port_mock.go -package=timekeeper

// PresentationPort receives display updates from the scheduler.
type PresentationPort interface {
	DisplayTime(text string)
	DisplaySessionLabel(text string, style model.Style)
	DisplayProgressMarks(count int)
	DisplayIdle()
}

type broadcast []PresentationPort

// Broadcast returns a port that forwards every update to each of ports in order.
// Nil ports are skipped.
func Broadcast(ports ...PresentationPort) PresentationPort {
	targets := make(broadcast, 0, len(ports))
	for _, port := range ports {
		if port != nil {
			targets = append(targets, port)
		}
	}
	return targets
}

func (targets broadcast) DisplayTime(text string) {
	for _, port := range targets {
		port.DisplayTime(text)
	}
}

func (targets broadcast) DisplaySessionLabel(text string, style model.Style) {
	for _, port := range targets {
		port.DisplaySessionLabel(text, style)
	}
}

func (targets broadcast) DisplayProgressMarks(count int) {
	for _, port := range targets {
		port.DisplayProgressMarks(count)
	}
}

func (targets broadcast) DisplayIdle() {
	for _, port := range targets {
		port.DisplayIdle()
	}
}
