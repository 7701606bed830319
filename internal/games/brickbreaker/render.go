package brickbreaker

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// button is a clickable overlay control in field coordinates.
type button struct {
	label  string
	rect   core.RectF
	action core.Action
}

const (
	buttonWidth  = 200
	buttonHeight = 40
	hudY         = 5
)

// pauseButton is the HUD control that pauses a running game.
func (g *Game) pauseButton() core.RectF {
	return core.NewRectF(g.cfg.Field.Width-120, 0, 120, 25)
}

// overlayButtons returns the controls of the pause or game-over overlay.
func (g *Game) overlayButtons() []button {
	w, h := g.cfg.Field.Width, g.cfg.Field.Height
	at := func(label string, y float64, a core.Action) button {
		return button{label: label, rect: core.NewRectF(w/2-buttonWidth/2, y, buttonWidth, buttonHeight), action: a}
	}

	switch g.mode {
	case ModePaused:
		return []button{
			at("Continue", h/2-10, core.ActionPause),
			at("Restart", h/2+40, core.ActionRestart),
			at("Back to Menu", h/2+90, core.ActionBack),
		}
	case ModeGameOver:
		return []button{
			at("Play Again", h/2, core.ActionConfirm),
			at("Restart", h/2+50, core.ActionRestart),
			at("Back to Menu", h/2+100, core.ActionBack),
		}
	default:
		return nil
	}
}

// Render draws the current frame into dst, scaling the field to fit.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.Draw(core.NewScaledCanvas(dst, g.cfg.Field.Width, g.cfg.Field.Height))
}

// Draw renders the game through any canvas.
func (g *Game) Draw(c core.Canvas) {
	g.drawHints(c)
	g.drawBricks(c)
	g.drawPaddle(c)
	g.drawBalls(c)
	g.particles.Draw(c)
	g.drawHUD(c)
	g.drawOverlay(c)
}

func (g *Game) drawBricks(c core.Canvas) {
	for _, b := range g.bricks.All() {
		c.FillRect(b.Rect, rowColor(g.cfg.Bricks.Colors, b.Row), 1)
	}
}

func (g *Game) drawPaddle(c core.Canvas) {
	color := core.ColorBrightWhite
	if g.powerUp.Kind == PowerUpBigPaddle {
		color = PowerUpBigPaddle.Color()
	}
	c.FillRect(g.paddle.Rect(), color, 1)
}

func (g *Game) drawBalls(c core.Canvas) {
	for _, b := range g.balls {
		c.FillCircle(b.X, b.Y, b.Radius, core.ColorBrightWhite, 1)
	}
}

func (g *Game) drawHUD(c core.Canvas) {
	w := g.cfg.Field.Width

	c.Text(10, hudY, fmt.Sprintf("Score: %d  Level: %d", g.score, g.level), core.ColorBrightWhite)
	c.Text(w-110, hudY, "[ PAUSE ]", core.ColorGray)

	if g.powerUp.Active() {
		const bar = 10
		filled := int(g.powerUp.Remaining(g.now)*bar + 0.5)
		text := fmt.Sprintf("%s %s%s", g.powerUp.Kind.Label(),
			strings.Repeat("▮", filled), strings.Repeat("▯", bar-filled))
		c.TextCentered(hudY, text, g.powerUp.Kind.Color())
	}
}

func (g *Game) drawHints(c core.Canvas) {
	c.TextCentered(g.cfg.Field.Height-8, "←/→ move · space pause · q quit", core.ColorGray)
}

func (g *Game) drawOverlay(c core.Canvas) {
	h := g.cfg.Field.Height

	switch {
	case g.mode == ModePaused:
		c.StrokeRect(g.overlayPanel(h/2-90), core.ColorGray)
		c.TextCentered(h/2-60, "PAUSED", core.ColorBrightYellow)
	case g.mode == ModeGameOver:
		c.StrokeRect(g.overlayPanel(h/2-110), core.ColorGray)
		c.TextCentered(h/2-80, "GAME OVER", core.ColorBrightRed)
		c.TextCentered(h/2-40, fmt.Sprintf("Final Score: %d", g.score), core.ColorBrightWhite)
	case g.transition.ShowMessage(g.now):
		c.TextCentered(h/2-60, fmt.Sprintf("LEVEL %d", g.level), core.ColorBrightYellow)
		c.TextCentered(h/2-30, fmt.Sprintf("+%d bonus", g.level*g.cfg.Level.BonusPerLevel), core.ColorBrightGreen)
	}

	for _, b := range g.overlayButtons() {
		c.FillRect(b.rect, core.ColorBlue, 0.2)
		_, cy := b.rect.Center()
		c.TextCentered(cy, b.label, core.ColorBrightWhite)
	}
}

// overlayPanel frames the overlay from top down to just below its last
// button.
func (g *Game) overlayPanel(top float64) core.RectF {
	buttons := g.overlayButtons()
	bottom := top + 100
	if n := len(buttons); n > 0 {
		bottom = buttons[n-1].rect.Bottom() + 20
	}
	const width = buttonWidth + 100
	return core.NewRectF(g.cfg.Field.Width/2-width/2, top, width, bottom-top)
}
