// Package eventlog provides the in-memory event buffer behind the Log tab.
// A zap logger writes structured entries into a fixed-capacity ring; nothing
// touches stdout or stderr while the TUI owns the terminal.
package eventlog

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Entry is one captured log event.
type Entry struct {
	Time    time.Time
	Level   string
	Message string
}

// Ring is a fixed-capacity append-only buffer; the oldest entries fall off.
type Ring struct {
	mu      sync.Mutex
	cap     int
	entries []Entry
}

// NewRing creates a ring holding up to capacity entries.
func NewRing(capacity int) *Ring {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring{cap: capacity}
}

// Append adds an entry, evicting the oldest when full.
func (r *Ring) Append(e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, e)
	if len(r.entries) > r.cap {
		r.entries = r.entries[len(r.entries)-r.cap:]
	}
}

// Entries returns a copy of the buffered entries, oldest first.
func (r *Ring) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Entry(nil), r.entries...)
}

// Len returns the current entry count.
func (r *Ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Clear drops all buffered entries.
func (r *Ring) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
}

// Logger returns a zap logger whose output lands in the ring.
func Logger(r *Ring) *zap.Logger {
	return zap.New(&ringCore{LevelEnabler: zapcore.DebugLevel, ring: r})
}

// ringCore is a zapcore.Core that appends rendered entries to a Ring.
type ringCore struct {
	zapcore.LevelEnabler
	ring   *Ring
	fields []zapcore.Field
}

func (c *ringCore) With(fields []zapcore.Field) zapcore.Core {
	clone := &ringCore{
		LevelEnabler: c.LevelEnabler,
		ring:         c.ring,
		fields:       append(append([]zapcore.Field(nil), c.fields...), fields...),
	}
	return clone
}

func (c *ringCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *ringCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range c.fields {
		f.AddTo(enc)
	}
	for _, f := range fields {
		f.AddTo(enc)
	}

	msg := ent.Message
	if len(enc.Fields) > 0 {
		keys := make([]string, 0, len(enc.Fields))
		for k := range enc.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = fmt.Sprintf("%s=%v", k, enc.Fields[k])
		}
		msg = msg + " " + strings.Join(parts, " ")
	}

	when := ent.Time
	if when.IsZero() {
		when = time.Now()
	}

	c.ring.Append(Entry{
		Time:    when,
		Level:   ent.Level.CapitalString(),
		Message: msg,
	})
	return nil
}

func (c *ringCore) Sync() error { return nil }
