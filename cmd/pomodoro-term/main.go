package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/logging"
	"pomodoro/internal/ui/terminal"

	"github.com/mattn/go-isatty"
)

type command int

const (
	commandNone command = iota
	commandStart
	commandReset
	commandQuit
	commandUnknown
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	tick := flag.Duration("tick", time.Second, "length of one countdown second")
	startNow := flag.Bool("start", false, "start the first work session immediately")
	flag.Parse()

	logger := logging.New(os.Stderr, *debug)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	inline := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	printer := terminal.New(os.Stdout, inline)
	loop := timekeeper.NewLoop(16)
	scheduler := timekeeper.New(printer, loop, timekeeper.Config{
		Tick:   *tick,
		Logger: logger,
	})

	fmt.Fprintln(os.Stdout, "commands: s = start/next session, r = reset, q = quit")
	if *startNow {
		loop.Post(scheduler.Start)
	}
	go readCommands(os.Stdin, loop, scheduler, stop, logger)

	loop.Run(ctx)
	fmt.Fprintln(os.Stdout)
}

func readCommands(input io.Reader, loop *timekeeper.Loop, scheduler *timekeeper.Scheduler, quit func(), logger *slog.Logger) {
	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		switch parseCommand(scanner.Text()) {
		case commandStart:
			loop.Post(scheduler.Start)
		case commandReset:
			loop.Post(scheduler.Reset)
		case commandQuit:
			quit()
			return
		case commandUnknown:
			logger.Warn("unknown command", slog.String("input", scanner.Text()))
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Error("read commands", slog.String("error", err.Error()))
	}
}

func parseCommand(line string) command {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "":
		return commandNone
	case "s", "start", "n", "next":
		return commandStart
	case "r", "reset":
		return commandReset
	case "q", "quit", "exit":
		return commandQuit
	default:
		return commandUnknown
	}
}
