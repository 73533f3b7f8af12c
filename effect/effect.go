// Package effect tracks the turn-countdown status effects active on the shop.
package effect

import "math"

// Kind is one status effect
type Kind int

const (
	LightsOut Kind = iota
	VisualDistortion
	Diarrhea
	Cancer
	Reshuffle
	KindCount
)

// Infinite marks an effect that never counts down
const Infinite = math.MaxInt

var kindNames = [KindCount]string{
	"lights out", "visual distortion", "diarrhea", "cancer", "reshuffle",
}

func (k Kind) String() string {
	if k < 0 || k >= KindCount {
		return "unknown"
	}
	return kindNames[k]
}

// Registry maps each active effect to its remaining turns
// Iteration is always in Kind order so random consequences replay by seed
type Registry struct {
	remaining map[Kind]int
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry {
	return &Registry{remaining: make(map[Kind]int)}
}

// Enable activates k for the given number of passes, refreshing an active counter
func (r *Registry) Enable(k Kind, turns int) {
	if turns < 0 {
		turns = 0
	}
	r.remaining[k] = turns
}

// Toggle flips an infinite effect, returning true when it is now active
func (r *Registry) Toggle(k Kind) bool {
	if _, ok := r.remaining[k]; ok {
		delete(r.remaining, k)
		return false
	}
	r.remaining[k] = Infinite
	return true
}

// Remove clears k, returning whether it was active
func (r *Registry) Remove(k Kind) bool {
	if _, ok := r.remaining[k]; !ok {
		return false
	}
	delete(r.remaining, k)
	return true
}

// Active reports whether k is present
func (r *Registry) Active(k Kind) bool {
	_, ok := r.remaining[k]
	return ok
}

// Remaining returns the counter for k
func (r *Registry) Remaining(k Kind) (int, bool) {
	n, ok := r.remaining[k]
	return n, ok
}

// Len returns the number of active effects
func (r *Registry) Len() int {
	return len(r.remaining)
}

// Kinds returns active effects in Kind order
func (r *Registry) Kinds() []Kind {
	kinds := make([]Kind, 0, len(r.remaining))
	for k := Kind(0); k < KindCount; k++ {
		if _, ok := r.remaining[k]; ok {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// Advance runs one countdown pass
// Every finite counter drops by one; counters that go negative are removed and
// reported as expired, the rest are reported as live
func (r *Registry) Advance() (live, expired []Kind) {
	for _, k := range r.Kinds() {
		n := r.remaining[k]
		if n == Infinite {
			live = append(live, k)
			continue
		}
		n--
		if n < 0 {
			delete(r.remaining, k)
			expired = append(expired, k)
			continue
		}
		r.remaining[k] = n
		live = append(live, k)
	}
	return live, expired
}
