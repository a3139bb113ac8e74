package game

import (
	"fmt"
	"strings"

	"github.com/Garsondee/Hex-Map/internal/interaction"
)

// SessionLogEntry is one recorded controller event during a headless run.
type SessionLogEntry struct {
	Tick   int
	Kind   interaction.EventKind
	Signal string
	Tile   int // interaction.NoTile when not tile-related
	DX, DY float64
}

// String formats the entry as a fixed-width log line.
//
//	[T=012] drag_stop        drag_stop  tile=-1   d=(+40,+30)
func (e SessionLogEntry) String() string {
	return fmt.Sprintf("[T=%03d] %-16s %-10s tile=%-3d d=(%+.0f,%+.0f)",
		e.Tick, e.Kind, e.Signal, e.Tile, e.DX, e.DY)
}

// SessionLog collects every controller event of a headless session.
// Unlike EventLog (UI ring buffer) it is unbounded and machine-readable.
type SessionLog struct {
	entries []SessionLogEntry
}

// NewSessionLog creates an empty log.
func NewSessionLog() *SessionLog {
	return &SessionLog{}
}

// Record appends a controller event.
func (sl *SessionLog) Record(tick int, e interaction.Event) {
	sl.entries = append(sl.entries, SessionLogEntry{
		Tick:   tick,
		Kind:   e.Kind,
		Signal: e.Signal,
		Tile:   e.Tile,
		DX:     e.DX,
		DY:     e.DY,
	})
}

// Entries returns all recorded entries.
func (sl *SessionLog) Entries() []SessionLogEntry {
	return sl.entries
}

// Filter returns entries of the given kind.
func (sl *SessionLog) Filter(kind interaction.EventKind) []SessionLogEntry {
	var out []SessionLogEntry
	for _, e := range sl.entries {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// Count returns how many entries have the given kind.
func (sl *SessionLog) Count(kind interaction.EventKind) int {
	return len(sl.Filter(kind))
}

// Kinds returns the event kinds in order, handy for sequence assertions.
func (sl *SessionLog) Kinds() []interaction.EventKind {
	out := make([]interaction.EventKind, len(sl.entries))
	for i, e := range sl.entries {
		out[i] = e.Kind
	}
	return out
}

// Format renders the whole log, one entry per line.
func (sl *SessionLog) Format() string {
	var b strings.Builder
	for _, e := range sl.entries {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}
