package game

import (
	"fmt"
	"testing"

	"github.com/Garsondee/Tank-Duel/internal/sim"
)

func TestEventLog_RecentOrder(t *testing.T) {
	el := NewEventLog()
	for i := 0; i < 5; i++ {
		el.Add(i, "P", fmt.Sprintf("msg %d", i))
	}
	got := el.Recent()
	if len(got) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(got))
	}
	for i, e := range got {
		if e.Tick != i {
			t.Fatalf("entry %d out of order: tick %d", i, e.Tick)
		}
	}
}

func TestEventLog_Wraps(t *testing.T) {
	el := NewEventLog()
	for i := 0; i < logMaxEntries+10; i++ {
		el.Add(i, "AI", "x")
	}
	if el.Len() != logMaxEntries {
		t.Fatalf("log should cap at %d, got %d", logMaxEntries, el.Len())
	}
	got := el.Recent()
	if got[0].Tick != 10 || got[len(got)-1].Tick != logMaxEntries+9 {
		t.Fatalf("expected ticks 10..%d, got %d..%d", logMaxEntries+9, got[0].Tick, got[len(got)-1].Tick)
	}
}

func TestEventLog_AddSim(t *testing.T) {
	el := NewEventLog()
	el.AddSim(sim.SimLogEntry{Tick: 7, Side: "AI", Category: "hit", Key: "damage", Value: "player -8 → 92"})
	e := el.Recent()[0]
	if e.Tick != 7 || e.Label != "AI" || e.Message != "hit/damage player -8 → 92" {
		t.Fatalf("unexpected entry %+v", e)
	}
}
