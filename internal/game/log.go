package game

// Log is a bounded list of action descriptions, most recent first.
type Log struct {
	capacity int
	entries  []string
}

// NewLog creates an empty log holding at most capacity entries.
func NewLog(capacity int) *Log {
	if capacity < 1 {
		capacity = 1
	}
	return &Log{capacity: capacity}
}

// Prepend returns a log with text in front, dropping the oldest entry
// when full.
func (l *Log) Prepend(text string) *Log {
	n := len(l.entries) + 1
	if n > l.capacity {
		n = l.capacity
	}
	entries := make([]string, 0, n)
	entries = append(entries, text)
	entries = append(entries, l.entries[:n-1]...)
	return &Log{capacity: l.capacity, entries: entries}
}

// Entries returns the entries, most recent first.
func (l *Log) Entries() []string {
	return append([]string(nil), l.entries...)
}

// Latest returns the most recent entry.
func (l *Log) Latest() string {
	if len(l.entries) == 0 {
		return ""
	}
	return l.entries[0]
}

// Len returns the number of entries.
func (l *Log) Len() int {
	return len(l.entries)
}
