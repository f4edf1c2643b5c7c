package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// DefaultHoldWindow keeps duck held between terminal key repeats. Terminals
// report no key release, so a hold ends when repeats stop arriving.
const DefaultHoldWindow = 180 * time.Millisecond

// Collector accumulates key events between frames and yields one Intents
// snapshot per frame. Not safe for concurrent use; the caller serializes
// HandleKey and Snapshot.
type Collector struct {
	table      *KeyTable
	holdWindow time.Duration

	pending  Intents
	duckSeen time.Time
	quit     bool
}

// NewCollector creates a collector with the given bindings (nil = defaults)
func NewCollector(table *KeyTable, holdWindow time.Duration) *Collector {
	if table == nil {
		table = DefaultKeyTable()
	}
	if holdWindow <= 0 {
		holdWindow = DefaultHoldWindow
	}
	return &Collector{table: table, holdWindow: holdWindow}
}

// HandleKey records a key event observed at now and returns its action
func (c *Collector) HandleKey(ev *tcell.EventKey, now time.Time) Action {
	a := c.table.Lookup(ev)
	switch a {
	case ActionNone:
	case ActionQuit:
		c.quit = true
	case ActionDuck:
		c.duckSeen = now
	default:
		c.pending.apply(a)
	}
	return a
}

// Snapshot returns the intents for the frame at now and clears edge triggers
func (c *Collector) Snapshot(now time.Time) Intents {
	in := c.pending
	c.pending = Intents{}
	in.DuckHeld = !c.duckSeen.IsZero() && now.Sub(c.duckSeen) <= c.holdWindow
	return in
}

// QuitRequested reports whether a quit key was seen
func (c *Collector) QuitRequested() bool {
	return c.quit
}
