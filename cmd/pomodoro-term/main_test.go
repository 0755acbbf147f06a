package main

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/logging"
)

type nopPort struct{}

func (nopPort) DisplayTime(string)                      {}
func (nopPort) DisplaySessionLabel(string, model.Style) {}
func (nopPort) DisplayProgressMarks(int)                {}
func (nopPort) DisplayIdle()                            {}

func TestParseCommand(t *testing.T) {
	tests := map[string]command{
		"":        commandNone,
		"  ":      commandNone,
		"s":       commandStart,
		"Start":   commandStart,
		"next":    commandStart,
		" r ":     commandReset,
		"reset":   commandReset,
		"q":       commandQuit,
		"EXIT":    commandQuit,
		"pause":   commandUnknown,
		"restart": commandUnknown,
	}
	for input, want := range tests {
		if got := parseCommand(input); got != want {
			t.Errorf("parseCommand(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestReadCommandsDrivesScheduler(t *testing.T) {
	loop := timekeeper.NewLoop(8)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	logger := logging.New(io.Discard, false)
	scheduler := timekeeper.New(nopPort{}, loop, timekeeper.Config{Tick: time.Hour, Logger: logger})

	stopped := make(chan struct{})
	go func() {
		loop.Run(ctx)
		close(stopped)
	}()

	readCommands(strings.NewReader("s\ns\nbogus\nq\ns\n"), loop, scheduler, cancel, logger)

	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("quit did not stop the loop")
	}
}

func TestReadCommandsReset(t *testing.T) {
	loop := timekeeper.NewLoop(8)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	logger := logging.New(io.Discard, false)
	scheduler := timekeeper.New(nopPort{}, loop, timekeeper.Config{Tick: time.Hour, Logger: logger})
	go loop.Run(ctx)

	readCommands(strings.NewReader("s\ns\ns\nr\n"), loop, scheduler, cancel, logger)

	reps := make(chan int)
	loop.Post(func() { reps <- scheduler.Reps() })
	select {
	case got := <-reps:
		if got != 0 {
			t.Fatalf("Reps() = %d after reset", got)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not answer")
	}
}
