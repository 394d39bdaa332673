// Package gamelog stores the in-game message log shown on the Log tab.
package gamelog

import (
	"fmt"
	"strings"
)

// DefaultCapacity is the number of entries kept before the oldest are dropped.
const DefaultCapacity = 64

// Entry is a single log line.
type Entry struct {
	Tick    uint64
	Message string
}

// String formats the entry as "[T=007] message".
func (e Entry) String() string {
	return fmt.Sprintf("[T=%03d] %s", e.Tick, e.Message)
}

// Log is a ring buffer of entries.
type Log struct {
	entries []Entry
	head    int
	count   int
}

// New creates a log holding at most capacity entries.
func New(capacity int) *Log {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Log{entries: make([]Entry, capacity)}
}

// Add appends an entry, evicting the oldest when full.
func (l *Log) Add(tick uint64, msg string) {
	l.entries[l.head] = Entry{Tick: tick, Message: msg}
	l.head = (l.head + 1) % len(l.entries)
	if l.count < len(l.entries) {
		l.count++
	}
}

// Addf appends a formatted entry.
func (l *Log) Addf(tick uint64, format string, args ...any) {
	l.Add(tick, fmt.Sprintf(format, args...))
}

// Len returns the number of stored entries.
func (l *Log) Len() int {
	return l.count
}

// Entries returns entries in chronological order (oldest first).
func (l *Log) Entries() []Entry {
	size := len(l.entries)
	result := make([]Entry, l.count)
	for i := 0; i < l.count; i++ {
		idx := (l.head - l.count + i + size) % size
		result[i] = l.entries[idx]
	}
	return result
}

// Lines returns the formatted entries, oldest first.
func (l *Log) Lines() []string {
	entries := l.Entries()
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.String()
	}
	return lines
}

// Text returns all lines joined by newlines.
func (l *Log) Text() string {
	return strings.Join(l.Lines(), "\n")
}
