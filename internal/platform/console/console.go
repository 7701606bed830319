// Package console runs the game directly on a tcell screen with an
// explicit fixed-rate loop, as an alternative to the Bubble Tea front end.
package console

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/brickbreaker/internal/audio"
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/games/brickbreaker"
)

// holdTicks keeps a direction active between key repeats.
const holdTicks = 8

// palette matches the 256-color codes used by the Bubble Tea renderer.
var palette = map[core.Color]tcell.Color{
	core.ColorRed:           tcell.PaletteColor(1),
	core.ColorGreen:         tcell.PaletteColor(2),
	core.ColorYellow:        tcell.PaletteColor(3),
	core.ColorBlue:          tcell.PaletteColor(4),
	core.ColorMagenta:       tcell.PaletteColor(5),
	core.ColorCyan:          tcell.PaletteColor(6),
	core.ColorWhite:         tcell.PaletteColor(7),
	core.ColorBrightRed:     tcell.PaletteColor(9),
	core.ColorBrightGreen:   tcell.PaletteColor(10),
	core.ColorBrightYellow:  tcell.PaletteColor(11),
	core.ColorBrightBlue:    tcell.PaletteColor(12),
	core.ColorBrightMagenta: tcell.PaletteColor(13),
	core.ColorBrightCyan:    tcell.PaletteColor(14),
	core.ColorBrightWhite:   tcell.PaletteColor(15),
	core.ColorOrange:        tcell.PaletteColor(208),
	core.ColorGray:          tcell.PaletteColor(245),
}

func styleFor(c core.Color) tcell.Style {
	if tc, ok := palette[c]; ok {
		return tcell.StyleDefault.Foreground(tc)
	}
	return tcell.StyleDefault
}

// Runner drives one game on a tcell screen.
type Runner struct {
	screen  tcell.Screen
	game    *brickbreaker.Game
	buf     *core.Screen
	input   core.InputFrame
	sound   *audio.SoundManager
	log     *log.Logger
	left    int
	right   int
	mouseUp bool
	quit    bool
}

// NewRunner prepares a runner. The caller owns screen Init and Fini; sound
// and logger may be nil.
func NewRunner(screen tcell.Screen, game *brickbreaker.Game, sound *audio.SoundManager, logger *log.Logger) *Runner {
	w, h := screen.Size()
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		screen:  screen,
		game:    game,
		buf:     core.NewScreen(w, h),
		input:   core.NewInputFrame(),
		sound:   sound,
		log:     logger,
		mouseUp: true,
	}
}

// Run resets the game and loops until the player leaves, quits or ctx is
// cancelled. The score is recorded in every case.
func (r *Runner) Run(ctx context.Context, rt core.RuntimeConfig) error {
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}
	rt.ScreenW, rt.ScreenH = r.buf.Width(), r.buf.Height()
	r.game.Reset(rt)
	defer r.game.Finish()

	ticker := time.NewTicker(time.Second / time.Duration(rt.TickRate))
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	r.draw()
	for {
		select {
		case <-ctx.Done():
			r.log.Debug("console loop cancelled")
			return nil
		case ev := <-events:
			r.handleEvent(ev)
		case <-ticker.C:
			r.tick()
			r.draw()
		}
		if r.quit {
			return nil
		}
	}
}

// handleEvent folds one terminal event into the next input frame.
func (r *Runner) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		r.handleKey(ev)
	case *tcell.EventMouse:
		pressed := ev.Buttons()&tcell.Button1 != 0
		if pressed && r.mouseUp {
			field := r.game.Config().Field
			x, y := ev.Position()
			lx, ly := core.NewScaledCanvas(r.buf, field.Width, field.Height).ToLogical(x, y)
			r.input.Click(lx, ly)
		}
		r.mouseUp = !pressed
	case *tcell.EventResize:
		w, h := ev.Size()
		r.buf.Resize(w, h)
		r.screen.Sync()
	}
}

func (r *Runner) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		r.quit = true
	case tcell.KeyLeft:
		r.left, r.right = holdTicks, 0
	case tcell.KeyRight:
		r.right, r.left = holdTicks, 0
	case tcell.KeyEscape:
		r.input.Set(core.ActionPause)
	case tcell.KeyEnter:
		r.input.Set(core.ActionConfirm)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		r.input.Set(core.ActionBack)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			r.quit = true
		case 'a', 'h':
			r.left, r.right = holdTicks, 0
		case 'd', 'l':
			r.right, r.left = holdTicks, 0
		case ' ', 'p':
			r.input.Set(core.ActionPause)
		case 'r':
			r.input.Set(core.ActionRestart)
		case 'b':
			r.input.Set(core.ActionBack)
		}
	}
}

// tick steps the simulation once with the collected input.
func (r *Runner) tick() {
	if r.left > 0 {
		r.input.Set(core.ActionLeft)
		r.left--
	}
	if r.right > 0 {
		r.input.Set(core.ActionRight)
		r.right--
	}

	res := r.game.Step(r.input)
	r.input.Clear()
	if r.sound != nil {
		r.sound.HandleEvents(res.Events)
	}
	if res.State.Exit {
		r.quit = true
	}
}

// draw renders the game buffer onto the tcell screen.
func (r *Runner) draw() {
	r.game.Render(r.buf)
	r.screen.Clear()
	for y := range r.buf.Height() {
		for x := range r.buf.Width() {
			c := r.buf.GetCell(x, y)
			if c.Rune == ' ' {
				continue
			}
			r.screen.SetContent(x, y, c.Rune, nil, styleFor(c.Color))
		}
	}
	r.screen.Show()
}
