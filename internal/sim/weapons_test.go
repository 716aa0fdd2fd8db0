package sim

import "testing"

func TestArsenalForRound_Cycles(t *testing.T) {
	a := DefaultArsenal()
	tests := []struct {
		round int
		want  string
	}{
		{1, "Bullet"},
		{2, "Fireball"},
		{3, "Snowball"},
		{4, "Bullet"},
		{5, "Fireball"},
		{0, "Bullet"},
		{-3, "Bullet"},
	}
	for _, tt := range tests {
		if got := a.ForRound(tt.round).Name; got != tt.want {
			t.Errorf("round %d: expected %s, got %s", tt.round, tt.want, got)
		}
	}
}

func TestArsenalIndex(t *testing.T) {
	a := DefaultArsenal()
	if a.Index(1) != 0 || a.Index(4) != 0 || a.Index(6) != 2 {
		t.Fatalf("unexpected indices: %d %d %d", a.Index(1), a.Index(4), a.Index(6))
	}
}

func TestArsenalEmpty(t *testing.T) {
	var a Arsenal
	if w := a.ForRound(3); w.Name != "" {
		t.Fatalf("empty arsenal should yield zero profile, got %+v", w)
	}
}

func TestDefaultArsenalProfiles(t *testing.T) {
	a := DefaultArsenal()
	if len(a) != 3 {
		t.Fatalf("expected 3 profiles, got %d", len(a))
	}
	b := a[0]
	if b.Speed != 8 || b.Damage != 8 || b.Radius != 6 {
		t.Fatalf("unexpected Bullet profile %+v", b)
	}
}
