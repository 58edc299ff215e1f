package session

import "sync"

// Kind tells renderers how to present a line.
type Kind int

const (
	KindText Kind = iota
	KindPrompt
	KindError
	KindJSON
	KindMarkdown
)

func (k Kind) String() string {
	switch k {
	case KindPrompt:
		return "prompt"
	case KindError:
		return "error"
	case KindJSON:
		return "json"
	case KindMarkdown:
		return "markdown"
	default:
		return "text"
	}
}

// Line is one rendered fragment of the output log.
type Line struct {
	Kind Kind
	Text string
}

// Text returns a plain text line.
func Text(s string) Line { return Line{Kind: KindText, Text: s} }

// Error returns an error line.
func Error(s string) Line { return Line{Kind: KindError, Text: s} }

// Observer is notified of log changes. Calls are serialized by the log.
type Observer interface {
	Appended(lines []Line)
	Cleared()
}

// Log is the append-only output log of a session. Only Clear removes lines.
type Log struct {
	mu        sync.Mutex
	lines     []Line
	observers []Observer
}

// Subscribe registers an observer for subsequent changes.
func (l *Log) Subscribe(o Observer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.observers = append(l.observers, o)
}

// Append adds lines as one contiguous batch.
func (l *Log) Append(lines ...Line) {
	if len(lines) == 0 {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, lines...)
	batch := append([]Line(nil), lines...)
	for _, o := range l.observers {
		o.Appended(batch)
	}
}

// Clear empties the log.
func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = nil
	for _, o := range l.observers {
		o.Cleared()
	}
}

// Lines returns a copy of the current log.
func (l *Log) Lines() []Line {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Line(nil), l.lines...)
}

// Len returns the number of lines in the log.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.lines)
}
