package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Tank-Duel/internal/sim"
)

var (
	backgroundColor = color.RGBA{R: 12, G: 14, B: 12, A: 255}
	groundColor     = color.RGBA{R: 0x22, G: 0x8b, B: 0x22, A: 255}
	mountainColor   = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 255}
	hillColor       = color.RGBA{R: 0x19, G: 0x66, B: 0x19, A: 255}
	grassColor      = color.RGBA{R: 0x00, G: 0x64, B: 0x00, A: 255}
	trackColor      = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}
	barrelColor     = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 255}
	healthGood      = color.RGBA{G: 255, A: 255}
	healthLow       = color.RGBA{R: 255, A: 255}

	playerColor = color.RGBA{R: 70, G: 110, B: 210, A: 255}
	aiColor     = color.RGBA{R: 210, G: 70, B: 70, A: 255}
)

// lowHealthFraction is the health fraction at or below which the bar turns red.
const lowHealthFraction = 0.25

type triangle [3][2]float32

type ellipse struct {
	cx, cy, rx, ry float32
}

// Arena scenery, in arena coordinates.
var (
	mountains = []triangle{
		{{100, 300}, {250, 100}, {400, 300}},
		{{500, 350}, {650, 120}, {750, 350}},
	}
	hills = []ellipse{
		{200, 500, 150, 80},
		{600, 480, 120, 60},
	}
)

func drawText(dst *ebiten.Image, face text.Face, s string, x, y int, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, face, op)
}

// drawTextCentered draws s scaled by scale with its top edge at y, centred on cx.
func drawTextCentered(dst *ebiten.Image, face text.Face, s string, cx, y, scale float64, c color.Color) {
	w := text.Advance(s, face) * scale
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx-w/2, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, face, op)
}

func fillPath(dst *ebiten.Image, path *vector.Path, c color.Color) {
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(c)
	vector.FillPath(dst, path, &vector.FillOptions{}, op)
}

func (g *Game) drawArena(screen *ebiten.Image) {
	aw, ah := float32(g.arenaW), float32(g.arenaH)
	vector.FillRect(screen, 0, 0, aw, ah, groundColor, false)

	for _, m := range mountains {
		var path vector.Path
		path.MoveTo(m[0][0], m[0][1])
		path.LineTo(m[1][0], m[1][1])
		path.LineTo(m[2][0], m[2][1])
		path.Close()
		fillPath(screen, &path, mountainColor)
	}

	const steps = 36
	for _, h := range hills {
		var path vector.Path
		for i := 0; i <= steps; i++ {
			a := 2 * math.Pi * float64(i) / steps
			x := h.cx + h.rx*float32(math.Cos(a))
			y := h.cy + h.ry*float32(math.Sin(a))
			if i == 0 {
				path.MoveTo(x, y)
				continue
			}
			path.LineTo(x, y)
		}
		path.Close()
		fillPath(screen, &path, hillColor)
	}

	for _, p := range g.terrainPatches {
		c := grassColor
		c.G += p.shade
		vector.FillRect(screen, p.x, p.y, p.w, p.h, c, false)
	}
}

func (g *Game) drawTank(screen *ebiten.Image, tv sim.TankView, body color.RGBA) {
	x, y := float32(tv.X), float32(tv.Y)
	w, h := float32(tv.Width), float32(tv.Height)
	cx, cy := x+w/2, y+h/2

	// Tracks run along the sides parallel to the barrel's axis of travel.
	if fx, _ := tv.Facing.Vector(); fx != 0 {
		vector.FillRect(screen, x-5, y, 5, h, trackColor, false)
		vector.FillRect(screen, x+w, y, 5, h, trackColor, false)
	} else {
		vector.FillRect(screen, x, y-5, w, 5, trackColor, false)
		vector.FillRect(screen, x, y+h, w, 5, trackColor, false)
	}
	vector.FillRect(screen, x, y, w, h, body, false)

	bl := float32(g.match.Config().BarrelLength)
	switch tv.Facing {
	case sim.FacingLeft:
		vector.FillRect(screen, cx-bl, cy-5, bl, 10, barrelColor, false)
	case sim.FacingUp:
		vector.FillRect(screen, cx-5, cy-bl, 10, bl, barrelColor, false)
	case sim.FacingDown:
		vector.FillRect(screen, cx-5, cy, 10, bl, barrelColor, false)
	default:
		vector.FillRect(screen, cx, cy-5, bl, 10, barrelColor, false)
	}

	frac := tv.HealthFraction()
	barCol := healthGood
	if frac <= lowHealthFraction {
		barCol = healthLow
	}
	vector.FillRect(screen, x, y-10, w, 5, color.RGBA{R: 40, G: 40, B: 40, A: 200}, false)
	vector.FillRect(screen, x, y-10, w*float32(frac), 5, barCol, false)
}

func (g *Game) drawProjectiles(screen *ebiten.Image, ps []sim.ProjectileView) {
	for _, p := range ps {
		x, y, r := float32(p.X), float32(p.Y), float32(p.Radius)
		if p.Special {
			glow := p.Color
			glow.A = 0x88
			vector.FillCircle(screen, x, y, r*1.5, premultiply(glow), true)
		}
		vector.FillCircle(screen, x, y, r, p.Color, true)
	}
}

func (g *Game) drawParticles(screen *ebiten.Image, ps []sim.ParticleView) {
	for _, p := range ps {
		c := p.Color
		c.A = uint8(255 * p.LifeFraction)
		sz := float32(p.Size)
		vector.FillRect(screen, float32(p.X), float32(p.Y), sz, sz, premultiply(c), false)
	}
}

// premultiply scales the colour channels by alpha, which ebiten expects of color.RGBA.
func premultiply(c color.RGBA) color.RGBA {
	a := uint32(c.A)
	return color.RGBA{
		R: uint8(uint32(c.R) * a / 255),
		G: uint8(uint32(c.G) * a / 255),
		B: uint8(uint32(c.B) * a / 255),
		A: c.A,
	}
}

func (g *Game) drawHUD(screen *ebiten.Image, s sim.Snapshot) {
	rounds := fmt.Sprintf("Round %d/%d", s.Round, s.MaxRounds)
	if s.Endless {
		rounds = fmt.Sprintf("Round %d (endless)", s.Round)
	}
	secs := int(math.Ceil(s.RoundRemaining.Seconds()))
	line := fmt.Sprintf("%s  %s  %d:%02d  Difficulty %d", rounds, s.Weapon, secs/60, secs%60, s.Difficulty)

	vector.FillRect(screen, 4, 4, float32(text.Advance(line, g.face))+12, 20, color.RGBA{R: 6, G: 10, B: 6, A: 210}, false)
	drawText(screen, g.face, line, 10, 7, color.White)

	hp := fmt.Sprintf("You %.0f   AI %.0f", s.Player.Health, s.AI.Health)
	vector.FillRect(screen, 4, 26, float32(text.Advance(hp, g.face))+12, 20, color.RGBA{R: 6, G: 10, B: 6, A: 210}, false)
	drawText(screen, g.face, hp, 10, 29, color.White)
}

func (g *Game) dim(screen *ebiten.Image) {
	vector.FillRect(screen, 0, 0, float32(g.arenaW), float32(g.arenaH), color.RGBA{A: 170}, false)
}

func (g *Game) drawMenu(screen *ebiten.Image) {
	g.dim(screen)
	cx := float64(g.arenaW) / 2
	drawTextCentered(screen, g.face, "TANK DUEL", cx, 120, 4, color.White)

	diff := "Difficulty:"
	for d := 1; d <= 3; d++ {
		if d == g.difficulty {
			diff += fmt.Sprintf(" [%d]", d)
		} else {
			diff += fmt.Sprintf("  %d ", d)
		}
	}
	rounds := fmt.Sprintf("Rounds: %d", g.maxRounds)
	if g.maxRounds == sim.EndlessRounds {
		rounds = "Rounds: endless"
	}

	lines := []string{
		diff + "   (1-3)",
		rounds + "   (R to change)",
		"",
		"Enter to start",
		"",
		"WASD / arrows move, Space fires",
	}
	y := 240.0
	for _, l := range lines {
		drawTextCentered(screen, g.face, l, cx, y, 2, color.White)
		y += 30
	}
}

func (g *Game) drawGameOver(screen *ebiten.Image, s sim.Snapshot) {
	if s.Outcome == nil {
		return
	}
	g.dim(screen)
	cx := float64(g.arenaW) / 2
	o := *s.Outcome

	headCol := color.RGBA{R: 255, G: 90, B: 90, A: 255}
	if o.PlayerWon() {
		headCol = color.RGBA{R: 120, G: 255, B: 120, A: 255}
	}
	drawTextCentered(screen, g.face, o.Headline(), cx, 180, 5, headCol)
	drawTextCentered(screen, g.face, fmt.Sprintf("Score: %d", o.Score), cx, 270, 3, color.White)
	drawTextCentered(screen, g.face, fmt.Sprintf("Round %d  You %.0f  AI %.0f", o.Round, o.PlayerHealth, o.AIHealth), cx, 320, 2, color.White)
	drawTextCentered(screen, g.face, "Enter: menu   C: copy summary", cx, 380, 2, color.White)

	if msg := g.statusLine(g.clock()); msg != "" {
		drawTextCentered(screen, g.face, msg, cx, 420, 2, color.RGBA{R: 255, G: 220, B: 0, A: 255})
	}
}
