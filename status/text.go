package status

import "sync/atomic"

// Text is a string metric; the zero value reads as ""
type Text struct {
	v atomic.Value
}

func (t *Text) Store(s string) {
	t.v.Store(s)
}

func (t *Text) Load() string {
	s, _ := t.v.Load().(string)
	return s
}

// Swap stores s and reports whether the published text changed
func (t *Text) Swap(s string) (old string, changed bool) {
	prev, _ := t.v.Swap(s).(string)
	return prev, prev != s
}
