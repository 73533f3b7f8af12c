package feed

// Backlog is a bounded FIFO of lines waiting to be published
type Backlog struct {
	capacity int
	lines    []string
}

// NewBacklog returns an empty backlog holding at most capacity lines
func NewBacklog(capacity int) *Backlog {
	if capacity < 1 {
		capacity = 1
	}
	return &Backlog{capacity: capacity}
}

// Push appends a line; a full backlog drops it and returns false
func (b *Backlog) Push(line string) bool {
	if len(b.lines) >= b.capacity {
		return false
	}
	b.lines = append(b.lines, line)
	return true
}

// Pop removes the oldest line
func (b *Backlog) Pop() (string, bool) {
	if len(b.lines) == 0 {
		return "", false
	}
	line := b.lines[0]
	b.lines = b.lines[1:]
	return line, true
}

// Len returns the number of pending lines
func (b *Backlog) Len() int {
	return len(b.lines)
}
