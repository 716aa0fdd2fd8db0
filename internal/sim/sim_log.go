package sim

import (
	"fmt"
	"strings"
)

// SimLogEntry is one recorded match event.
type SimLogEntry struct {
	Tick     int
	Side     string  // "P", "AI", or "--" for match-wide events
	Category string  // match, round, fire, hit, tank, projectile
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=0042] AI   hit       damage           player -8 → 92
func (e SimLogEntry) String() string {
	return fmt.Sprintf("[T=%04d] %-4s %-9s %-16s %s",
		e.Tick, e.Side, e.Category, e.Key, e.Value)
}

// SimLog collects structured events during a match. Unlike the on-screen
// event panel it is unbounded and machine-readable.
type SimLog struct {
	entries []SimLogEntry
	verbose bool
}

// NewSimLog creates a SimLog. If verbose is true, per-tick entries such as
// projectile exits are recorded too.
func NewSimLog(verbose bool) *SimLog {
	return &SimLog{verbose: verbose}
}

// Add records a new entry.
func (sl *SimLog) Add(tick int, side, category, key, value string, numVal float64) {
	sl.entries = append(sl.entries, SimLogEntry{
		Tick:     tick,
		Side:     side,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (sl *SimLog) AddVerbose(tick int, side, category, key, value string, numVal float64) {
	if !sl.verbose {
		return
	}
	sl.Add(tick, side, category, key, value, numVal)
}

// Entries returns all recorded entries.
func (sl *SimLog) Entries() []SimLogEntry {
	return sl.entries
}

// Len is the number of recorded entries.
func (sl *SimLog) Len() int {
	return len(sl.entries)
}

// Since returns entries recorded at or after index i, for incremental readers.
func (sl *SimLog) Since(i int) []SimLogEntry {
	if i < 0 {
		i = 0
	}
	if i >= len(sl.entries) {
		return nil
	}
	return sl.entries[i:]
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (sl *SimLog) Filter(category, key string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterSide returns entries for one side label.
func (sl *SimLog) FilterSide(label string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if e.Side == label {
			out = append(out, e)
		}
	}
	return out
}

// CountCategory returns how many entries match the given category and key.
func (sl *SimLog) CountCategory(category, key string) int {
	return len(sl.Filter(category, key))
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (sl *SimLog) LastOf(category, key string) (SimLogEntry, bool) {
	entries := sl.Filter(category, key)
	if len(entries) == 0 {
		return SimLogEntry{}, false
	}
	return entries[len(entries)-1], true
}

// HasEntry returns true if at least one entry matches category, key, and value substring.
func (sl *SimLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		if valueSubstr != "" && !strings.Contains(e.Value, valueSubstr) {
			continue
		}
		return true
	}
	return false
}

// Reset drops every entry.
func (sl *SimLog) Reset() {
	sl.entries = sl.entries[:0]
}

// Format returns the full log as a single string for t.Log output.
func (sl *SimLog) Format() string {
	var sb strings.Builder
	for _, e := range sl.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
