package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Tank-Duel/internal/sim"
)

// inputFromKeys samples the held movement and fire keys. WASD and the arrow
// keys both steer; space fires.
func inputFromKeys(pressed func(ebiten.Key) bool) sim.Input {
	return sim.Input{
		Left:  pressed(ebiten.KeyA) || pressed(ebiten.KeyArrowLeft),
		Right: pressed(ebiten.KeyD) || pressed(ebiten.KeyArrowRight),
		Up:    pressed(ebiten.KeyW) || pressed(ebiten.KeyArrowUp),
		Down:  pressed(ebiten.KeyS) || pressed(ebiten.KeyArrowDown),
		Fire:  pressed(ebiten.KeySpace),
	}
}

// commandKeys are the edge-triggered menu and game-over keys.
var commandKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3,
	ebiten.KeyR, ebiten.KeyEnter, ebiten.KeyC,
}

// keyEdges turns held-key polling into press events.
type keyEdges struct {
	prev map[ebiten.Key]bool
}

// scan returns the keys in keys that went down since the previous scan.
func (e *keyEdges) scan(keys []ebiten.Key, pressed func(ebiten.Key) bool) []ebiten.Key {
	current := make(map[ebiten.Key]bool, len(keys))
	var down []ebiten.Key
	for _, k := range keys {
		current[k] = pressed(k)
		if current[k] && !e.prev[k] {
			down = append(down, k)
		}
	}
	e.prev = current
	return down
}
