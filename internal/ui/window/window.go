package window

import (
	"image/color"
	"strings"

	"pomodoro/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

var (
	colorPink   = color.NRGBA{R: 0xe2, G: 0x97, B: 0x9c, A: 0xff}
	colorRed    = color.NRGBA{R: 0xe7, G: 0x30, B: 0x5b, A: 0xff}
	colorGreen  = color.NRGBA{R: 0x9b, G: 0xde, B: 0xac, A: 0xff}
	colorYellow = color.NRGBA{R: 0xf7, G: 0xf5, B: 0xdd, A: 0xff}
	colorWhite  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

const (
	tomatoWidth  = float32(200)
	tomatoHeight = float32(224)
	// The clock text sits on the lower half of the tomato.
	clockCenterFraction = float32(130) / tomatoHeight

	idleLabel = "Timer"
	idleClock = "00:00"
	checkMark = "✔"
)

// Callbacks defines the window's button handlers.
type Callbacks struct {
	OnStart func()
	OnReset func()
}

// Window is the main Pomodoro window. It implements
// timekeeper.PresentationPort and must be updated from the Fyne main goroutine.
type Window struct {
	window      fyne.Window
	callbacks   Callbacks
	background  *canvas.Rectangle
	image       *canvas.Image
	titleLabel  *canvas.Text
	clockLabel  *canvas.Text
	marksLabel  *canvas.Text
	startButton *widget.Button
	resetButton *widget.Button
}

// New creates the main window. tomato is drawn behind the clock and may be nil.
func New(app fyne.App, title string, tomato fyne.Resource, callbacks Callbacks) *Window {
	window := app.NewWindow(title)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetFixedSize(true)

	background := canvas.NewRectangle(colorYellow)

	image := canvas.NewImageFromResource(tomato)
	image.FillMode = canvas.ImageFillContain
	image.SetMinSize(fyne.NewSize(tomatoWidth, tomatoHeight))

	titleLabel := canvas.NewText(idleLabel, colorGreen)
	titleLabel.Alignment = fyne.TextAlignCenter
	titleLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	titleLabel.TextSize = 40

	clockLabel := canvas.NewText(idleClock, colorWhite)
	clockLabel.Alignment = fyne.TextAlignCenter
	clockLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	clockLabel.TextSize = 28

	marksLabel := canvas.NewText("", colorGreen)
	marksLabel.Alignment = fyne.TextAlignCenter
	marksLabel.TextStyle = fyne.TextStyle{Bold: true}
	marksLabel.TextSize = 24

	win := &Window{
		window:     window,
		callbacks:  callbacks,
		background: background,
		image:      image,
		titleLabel: titleLabel,
		clockLabel: clockLabel,
		marksLabel: marksLabel,
	}
	win.startButton = widget.NewButton("Start", win.handleStart)
	win.resetButton = widget.NewButton("Reset", win.handleReset)

	tomatoArea := container.New(&tomatoLayout{}, image, clockLabel)
	buttons := container.NewHBox(win.startButton, layout.NewSpacer(), win.resetButton)
	content := container.NewVBox(titleLabel, tomatoArea, buttons, marksLabel)
	padded := container.New(layout.NewCustomPaddedLayout(50, 50, 100, 100), content)

	window.SetContent(container.NewStack(background, padded))
	return win
}

// Show displays the window and brings it to front.
func (win *Window) Show() {
	win.window.Show()
	win.window.RequestFocus()
}

func (win *Window) Hide() {
	win.window.Hide()
}

// SetMainMenu installs the window's menu bar.
func (win *Window) SetMainMenu(menu *fyne.MainMenu) {
	win.window.SetMainMenu(menu)
}

// SetMaster makes closing this window quit the app.
func (win *Window) SetMaster() {
	win.window.SetMaster()
}

// SetCloseIntercept overrides the close button behavior.
func (win *Window) SetCloseIntercept(handler func()) {
	win.window.SetCloseIntercept(handler)
}

func (win *Window) DisplayTime(text string) {
	win.clockLabel.Text = text
	win.clockLabel.Refresh()
}

func (win *Window) DisplaySessionLabel(text string, style model.Style) {
	win.titleLabel.Text = text
	win.titleLabel.Color = styleColor(style)
	win.titleLabel.Refresh()
}

func (win *Window) DisplayProgressMarks(count int) {
	if count < 0 {
		count = 0
	}
	win.marksLabel.Text = strings.Repeat(checkMark, count)
	win.marksLabel.Refresh()
}

func (win *Window) DisplayIdle() {
	win.DisplaySessionLabel(idleLabel, model.StyleIdle)
	win.DisplayTime(idleClock)
}

func (win *Window) handleStart() {
	if win.callbacks.OnStart != nil {
		win.callbacks.OnStart()
	}
}

func (win *Window) handleReset() {
	if win.callbacks.OnReset != nil {
		win.callbacks.OnReset()
	}
}

func styleColor(style model.Style) color.Color {
	switch style {
	case model.StyleShortBreak:
		return colorPink
	case model.StyleLongBreak:
		return colorRed
	default:
		return colorGreen
	}
}

type tomatoLayout struct{}

func (tl *tomatoLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 2 {
		return
	}
	image := objects[0]
	clock := objects[1]

	image.Move(fyne.NewPos(0, 0))
	image.Resize(size)

	clockSize := clock.MinSize()
	clockY := size.Height*clockCenterFraction - clockSize.Height/2
	if clockY < 0 {
		clockY = 0
	}
	clock.Move(fyne.NewPos(0, clockY))
	clock.Resize(fyne.NewSize(size.Width, clockSize.Height))
}

func (tl *tomatoLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) < 2 {
		return fyne.NewSize(0, 0)
	}
	imageMin := objects[0].MinSize()
	clockMin := objects[1].MinSize()
	width := imageMin.Width
	if clockMin.Width > width {
		width = clockMin.Width
	}
	height := imageMin.Height
	if clockMin.Height > height {
		height = clockMin.Height
	}
	return fyne.NewSize(width, height)
}
