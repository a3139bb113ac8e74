package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	logPanelWidth = 320
	logMaxEntries = 60
	logLineHeight = 16
)

// LogEntry is a single line in the event log.
type LogEntry struct {
	Tick    int
	Kind    string // controller event kind, or copy / copy_failed
	Message string
}

// EventLog is a ring buffer of interaction events rendered on-screen.
type EventLog struct {
	entries []LogEntry
	head    int
	count   int
}

// NewEventLog creates an event log with a fixed capacity.
func NewEventLog() *EventLog {
	return &EventLog{
		entries: make([]LogEntry, logMaxEntries),
	}
}

// Add appends an entry to the log.
func (el *EventLog) Add(tick int, kind, msg string) {
	el.entries[el.head] = LogEntry{
		Tick:    tick,
		Kind:    kind,
		Message: msg,
	}
	el.head = (el.head + 1) % logMaxEntries
	if el.count < logMaxEntries {
		el.count++
	}
}

// Len returns the number of retained entries.
func (el *EventLog) Len() int { return el.count }

// Recent returns entries in chronological order (oldest first).
func (el *EventLog) Recent() []LogEntry {
	result := make([]LogEntry, el.count)
	for i := 0; i < el.count; i++ {
		idx := (el.head - el.count + i + logMaxEntries) % logMaxEntries
		result[i] = el.entries[idx]
	}
	return result
}

// Tail returns at most the n newest entries, oldest first.
func (el *EventLog) Tail(n int) []LogEntry {
	entries := el.Recent()
	if n < 0 {
		n = 0
	}
	if len(entries) > n {
		entries = entries[len(entries)-n:]
	}
	return entries
}

// kindColor picks the marker colour for an entry.
func kindColor(kind string) color.RGBA {
	switch kind {
	case "drag_start", "drag_stop":
		return color.RGBA{R: 70, G: 150, B: 210, A: 255}
	case "click_open":
		return color.RGBA{R: 90, G: 200, B: 90, A: 255}
	case "click_suppressed", "copy_failed":
		return color.RGBA{R: 220, G: 90, B: 70, A: 255}
	default:
		return color.RGBA{R: 150, G: 150, B: 150, A: 255}
	}
}

// Draw renders the event log down the right edge, newest entry last. Each
// row is tick, a colour chip for the kind, the kind, then the message.
func (el *EventLog) Draw(screen *ebiten.Image, panelX int, panelH int) {
	x := float32(panelX)
	vector.FillRect(screen, x, 0, logPanelWidth, float32(panelH), color.RGBA{R: 14, G: 14, B: 20, A: 248}, false)
	vector.StrokeLine(screen, x, 0, x, float32(panelH), 1.0, color.RGBA{R: 60, G: 60, B: 90, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("EVENTS (%d)", el.count), panelX+8, 2)

	entries := el.Tail((panelH - 24) / logLineHeight)

	const kindCol = 56 // x offset of the kind column
	for i, e := range entries {
		y := 20 + i*logLineHeight
		if i%2 == 1 {
			vector.FillRect(screen, x+1, float32(y), logPanelWidth-1, logLineHeight, color.RGBA{R: 20, G: 20, B: 30, A: 255}, false)
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%5d", e.Tick), panelX+4, y)
		vector.FillRect(screen, x+kindCol-8, float32(y+4), 4, 8, kindColor(e.Kind), false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%-16s %s", e.Kind, e.Message), panelX+kindCol, y)
	}
}
