package engine

// Queue is the FIFO of pending turn steps
// Only the front element is ever read or rewritten; Push appends whole scripts
type Queue struct {
	items []Instruction
}

// Push appends steps at the back
func (q *Queue) Push(steps ...Instruction) {
	q.items = append(q.items, steps...)
}

// Front returns the head without removing it
func (q *Queue) Front() (Instruction, bool) {
	if len(q.items) == 0 {
		return nil, false
	}
	return q.items[0], true
}

// ReplaceFront overwrites the head in place, no-op on an empty queue
func (q *Queue) ReplaceFront(in Instruction) {
	if len(q.items) == 0 {
		return
	}
	q.items[0] = in
}

// PopFront removes the head, no-op on an empty queue
func (q *Queue) PopFront() {
	if len(q.items) == 0 {
		return
	}
	q.items[0] = nil
	q.items = q.items[1:]
	if len(q.items) == 0 {
		q.items = nil
	}
}

func (q *Queue) Len() int {
	return len(q.items)
}

func (q *Queue) Empty() bool {
	return len(q.items) == 0
}

// Snapshot returns a copy of the pending steps, front first
func (q *Queue) Snapshot() []Instruction {
	out := make([]Instruction, len(q.items))
	copy(out, q.items)
	return out
}
