package rng

// Pick returns a uniformly chosen element; panics on an empty slice
func Pick[T any](r *Rand, items []T) T {
	if len(items) == 0 {
		panic("rng: pick from empty slice")
	}
	return items[r.IntN(len(items))]
}

// Entry is one weighted alternative of a random table
type Entry[T any] struct {
	Weight int
	Value  T
}

// Table is a fixed set of weighted alternatives
type Table[T any] []Entry[T]

// Total returns the sum of positive weights
func (t Table[T]) Total() int {
	total := 0
	for _, e := range t {
		if e.Weight > 0 {
			total += e.Weight
		}
	}
	return total
}

// Roll draws one alternative proportionally to its weight
// Every roll must land in a bucket; an uncovered roll is a programming error
func (t Table[T]) Roll(r *Rand) T {
	total := t.Total()
	if total == 0 {
		panic("rng: roll on table without positive weights")
	}

	roll := r.IntN(total)
	for _, e := range t {
		if e.Weight <= 0 {
			continue
		}
		if roll < e.Weight {
			return e.Value
		}
		roll -= e.Weight
	}
	panic("rng: roll fell outside every bucket")
}
