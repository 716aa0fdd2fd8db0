package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Tank-Duel/internal/sim"
)

func held(keys ...ebiten.Key) func(ebiten.Key) bool {
	set := make(map[ebiten.Key]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return func(k ebiten.Key) bool { return set[k] }
}

func TestInputFromKeys(t *testing.T) {
	tests := []struct {
		name string
		keys []ebiten.Key
		want sim.Input
	}{
		{"none", nil, sim.Input{}},
		{"wasd", []ebiten.Key{ebiten.KeyW, ebiten.KeyD}, sim.Input{Up: true, Right: true}},
		{"arrows", []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyArrowLeft}, sim.Input{Down: true, Left: true}},
		{"fire", []ebiten.Key{ebiten.KeySpace}, sim.Input{Fire: true}},
		{"mixed", []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowRight, ebiten.KeySpace}, sim.Input{Left: true, Right: true, Fire: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inputFromKeys(held(tt.keys...)); got != tt.want {
				t.Fatalf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestKeyEdges_FireOncePerPress(t *testing.T) {
	var e keyEdges
	keys := []ebiten.Key{ebiten.KeyEnter, ebiten.KeyC}

	if got := e.scan(keys, held(ebiten.KeyEnter)); len(got) != 1 || got[0] != ebiten.KeyEnter {
		t.Fatalf("first press should register, got %v", got)
	}
	if got := e.scan(keys, held(ebiten.KeyEnter)); len(got) != 0 {
		t.Fatalf("held key should not repeat, got %v", got)
	}
	e.scan(keys, held())
	if got := e.scan(keys, held(ebiten.KeyEnter, ebiten.KeyC)); len(got) != 2 {
		t.Fatalf("release then press should register both keys, got %v", got)
	}
}
