package main

import (
	"fmt"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/Garsondee/Tank-Duel/internal/sim"
)

var (
	frameGround = color.RGBA{R: 0x22, G: 0x8b, B: 0x22, A: 255}
	framePlayer = color.RGBA{R: 70, G: 110, B: 210, A: 255}
	frameAI     = color.RGBA{R: 210, G: 70, B: 70, A: 255}
	frameBarrel = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 255}
)

// drawFrame renders a snapshot into a new context the size of the arena.
func drawFrame(s sim.Snapshot) *gg.Context {
	w, h := int(s.ArenaWidth), int(s.ArenaHeight)
	if w <= 0 || h <= 0 {
		w, h = 800, 600
	}
	dc := gg.NewContext(w, h)

	dc.SetColor(frameGround)
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	dc.Fill()

	for _, p := range s.Projectiles {
		if p.Special {
			glow := p.Color
			glow.A = 0x88
			dc.SetColor(glow)
			dc.DrawCircle(p.X, p.Y, p.Radius*1.5)
			dc.Fill()
		}
		dc.SetColor(p.Color)
		dc.DrawCircle(p.X, p.Y, p.Radius)
		dc.Fill()
	}
	for _, p := range s.Particles {
		c := p.Color
		c.A = uint8(255 * p.LifeFraction)
		dc.SetColor(c)
		dc.DrawRectangle(p.X, p.Y, p.Size, p.Size)
		dc.Fill()
	}

	if s.Player != nil {
		drawFrameTank(dc, *s.Player, framePlayer)
	}
	if s.AI != nil {
		drawFrameTank(dc, *s.AI, frameAI)
	}

	dc.SetColor(color.White)
	hud := fmt.Sprintf("Round %d/%d  %s  tick %d", s.Round, s.MaxRounds, s.Weapon, s.Tick)
	dc.DrawString(hud, 10, 20)
	if s.Outcome != nil {
		dc.DrawStringAnchored(s.Outcome.Headline(), float64(w)/2, float64(h)/2-10, 0.5, 0.5)
		dc.DrawStringAnchored(fmt.Sprintf("Score: %d", s.Outcome.Score), float64(w)/2, float64(h)/2+10, 0.5, 0.5)
	}
	return dc
}

func drawFrameTank(dc *gg.Context, tv sim.TankView, body color.RGBA) {
	dc.SetColor(body)
	dc.DrawRectangle(tv.X, tv.Y, tv.Width, tv.Height)
	dc.Fill()

	cx, cy := tv.X+tv.Width/2, tv.Y+tv.Height/2
	fx, fy := tv.Facing.Vector()
	dc.SetColor(frameBarrel)
	dc.SetLineWidth(10)
	dc.DrawLine(cx, cy, cx+fx*25, cy+fy*25)
	dc.Stroke()

	bar := color.RGBA{G: 255, A: 255}
	if tv.HealthFraction() <= 0.25 {
		bar = color.RGBA{R: 255, A: 255}
	}
	dc.SetColor(bar)
	dc.DrawRectangle(tv.X, tv.Y-10, tv.Width*tv.HealthFraction(), 5)
	dc.Fill()
}

// renderFrame writes the snapshot to path as PNG.
func renderFrame(s sim.Snapshot, path string) error {
	if err := drawFrame(s).SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
