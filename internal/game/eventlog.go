package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Tank-Duel/internal/sim"
)

const (
	logPanelWidth = 320
	logMaxEntries = 60
	logLineHeight = 14
)

// EventEntry is a single line in the event panel.
type EventEntry struct {
	Tick    int
	Label   string // "P", "AI" or "--"
	Message string
}

// EventLog is a ring buffer of match events rendered on-screen.
type EventLog struct {
	entries []EventEntry
	head    int
	count   int
}

// NewEventLog creates an event log with a fixed capacity.
func NewEventLog() *EventLog {
	return &EventLog{
		entries: make([]EventEntry, logMaxEntries),
	}
}

// Add appends an entry to the log, overwriting the oldest when full.
func (el *EventLog) Add(tick int, label, msg string) {
	el.entries[el.head] = EventEntry{
		Tick:    tick,
		Label:   label,
		Message: msg,
	}
	el.head = (el.head + 1) % logMaxEntries
	if el.count < logMaxEntries {
		el.count++
	}
}

// AddSim copies a SimLog entry into the panel.
func (el *EventLog) AddSim(e sim.SimLogEntry) {
	el.Add(e.Tick, e.Side, fmt.Sprintf("%s/%s %s", e.Category, e.Key, e.Value))
}

// Len is the number of entries held.
func (el *EventLog) Len() int { return el.count }

// Recent returns entries in chronological order (oldest first).
func (el *EventLog) Recent() []EventEntry {
	result := make([]EventEntry, el.count)
	for i := 0; i < el.count; i++ {
		idx := (el.head - el.count + i + logMaxEntries) % logMaxEntries
		result[i] = el.entries[idx]
	}
	return result
}

func labelColor(label string) color.RGBA {
	switch label {
	case sim.SidePlayer.Label():
		return playerColor
	case sim.SideAI.Label():
		return aiColor
	default:
		return color.RGBA{R: 150, G: 150, B: 150, A: 255}
	}
}

// Draw renders the event panel on the right side of the screen.
func (el *EventLog) Draw(screen *ebiten.Image, face text.Face, panelX, panelH int) {
	vector.FillRect(screen, float32(panelX), 0, float32(logPanelWidth), float32(panelH), color.RGBA{R: 10, G: 12, B: 10, A: 248}, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1.0, color.RGBA{R: 50, G: 70, B: 50, A: 255}, false)

	vector.FillRect(screen, float32(panelX), 0, float32(logPanelWidth), 18, color.RGBA{R: 20, G: 30, B: 20, A: 255}, false)
	drawText(screen, face, "EVENT LOG", panelX+8, 3, color.White)
	vector.StrokeLine(screen, float32(panelX), 18, float32(panelX+logPanelWidth), 18, 1.0, color.RGBA{R: 50, G: 80, B: 50, A: 200}, false)

	entries := el.Recent()

	// Newest at the bottom.
	maxVisible := (panelH - 26) / logLineHeight
	startIdx := 0
	if len(entries) > maxVisible {
		startIdx = len(entries) - maxVisible
	}
	visible := entries[startIdx:]
	recent := 3

	y := 22
	for i, e := range visible {
		isRecent := i >= len(visible)-recent
		if isRecent {
			vector.FillRect(screen, float32(panelX+2), float32(y), float32(logPanelWidth-4), float32(logLineHeight), color.RGBA{R: 30, G: 40, B: 30, A: 160}, false)
		}
		vector.FillRect(screen, float32(panelX+5), float32(y+4), 3, 6, labelColor(e.Label), false)

		var textCol color.Color = color.RGBA{R: 170, G: 170, B: 170, A: 255}
		if isRecent {
			textCol = color.White
		}
		line := fmt.Sprintf("%4d [%s] %s", e.Tick, e.Label, e.Message)
		drawText(screen, face, line, panelX+12, y, textCol)
		y += logLineHeight
	}
}
