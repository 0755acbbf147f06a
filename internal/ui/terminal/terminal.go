package terminal

import (
	"fmt"
	"io"
	"strings"

	"pomodoro/internal/core/model"

	"github.com/fatih/color"
)

const checkMark = "✔"

// Printer writes timer updates to a terminal. It implements
// timekeeper.PresentationPort and is not safe for concurrent use.
type Printer struct {
	out    io.Writer
	inline bool
	label  string
	style  model.Style
	marks  int
	colors map[model.Style]*color.Color
	muted  *color.Color
}

// New creates a Printer. When inline is set, countdown updates overwrite the
// current line instead of appending one line per tick.
func New(out io.Writer, inline bool) *Printer {
	return &Printer{
		out:    out,
		inline: inline,
		label:  model.Idle.Label(),
		style:  model.StyleIdle,
		colors: map[model.Style]*color.Color{
			model.StyleIdle:       color.New(color.FgGreen, color.Bold),
			model.StyleWork:       color.New(color.FgGreen, color.Bold),
			model.StyleShortBreak: color.New(color.FgMagenta, color.Bold),
			model.StyleLongBreak:  color.New(color.FgRed, color.Bold),
		},
		muted: color.New(color.Faint),
	}
}

func (printer *Printer) DisplayTime(text string) {
	line := fmt.Sprintf("%s %s", printer.paint(printer.label), text)
	if printer.marks > 0 {
		line += " " + strings.Repeat(checkMark, printer.marks)
	}
	if printer.inline {
		fmt.Fprintf(printer.out, "\r%s\033[K", line)
		return
	}
	fmt.Fprintln(printer.out, line)
}

func (printer *Printer) DisplaySessionLabel(text string, style model.Style) {
	printer.label = text
	printer.style = style
	printer.breakLine()
	fmt.Fprintf(printer.out, "%s %s\n", printer.muted.Sprint("=="), printer.paint(text))
}

func (printer *Printer) DisplayProgressMarks(count int) {
	if count < 0 {
		count = 0
	}
	printer.marks = count
}

func (printer *Printer) DisplayIdle() {
	printer.label = model.Idle.Label()
	printer.style = model.StyleIdle
	printer.breakLine()
	fmt.Fprintf(printer.out, "%s 00:00 %s\n", printer.paint(printer.label), printer.muted.Sprint("(reset)"))
}

func (printer *Printer) paint(text string) string {
	paint, ok := printer.colors[printer.style]
	if !ok {
		return text
	}
	return paint.Sprint(text)
}

func (printer *Printer) breakLine() {
	if printer.inline {
		fmt.Fprintln(printer.out)
	}
}
