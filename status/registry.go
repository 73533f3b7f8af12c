// Package status publishes the shop's read-only state to the HUD and tools.
// The turn engine caches metric pointers once and writes atomics each tick;
// readers take a Snapshot and never touch engine state directly.
package status

import (
	"strings"
	"sync/atomic"
)

// Metric keys written by the turn engine and the front-end
const (
	KeyBalance    = "shop.balance"
	KeyTurn       = "shop.turn"
	KeyTarget     = "shop.target"
	KeyBusy       = "shop.busy"
	KeyWar        = "shop.war"
	KeyWon        = "shop.won"
	KeyRequest    = "shop.request"
	KeyEffects    = "shop.effects"
	KeyTicks      = "engine.ticks"
	KeyQueueDepth = "engine.queue_depth"
	KeyMuted      = "audio.muted"
)

// EffectSep joins effect names under KeyEffects
const EffectSep = ","

// Registry is the central metrics facade
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Strings *MetricMap[Text]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Strings: NewMetricMap[Text](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Strings.Count()
}

// Snapshot is one consistent-enough read of the shop metrics
// Fields nobody has published yet hold their zero value
type Snapshot struct {
	Balance    int64
	Turn       int64
	Target     int64
	Ticks      int64
	QueueDepth int64
	Busy       bool
	War        bool
	Won        bool
	Muted      bool
	Request    string
	Effects    []string
}

// Snapshot reads every known metric without registering missing ones
func (r *Registry) Snapshot() Snapshot {
	return Snapshot{
		Balance:    r.loadInt(KeyBalance),
		Turn:       r.loadInt(KeyTurn),
		Target:     r.loadInt(KeyTarget),
		Ticks:      r.loadInt(KeyTicks),
		QueueDepth: r.loadInt(KeyQueueDepth),
		Busy:       r.loadBool(KeyBusy),
		War:        r.loadBool(KeyWar),
		Won:        r.loadBool(KeyWon),
		Muted:      r.loadBool(KeyMuted),
		Request:    r.loadText(KeyRequest),
		Effects:    splitEffects(r.loadText(KeyEffects)),
	}
}

func (r *Registry) loadInt(key string) int64 {
	if p, ok := r.Ints.Lookup(key); ok {
		return p.Load()
	}
	return 0
}

func (r *Registry) loadBool(key string) bool {
	if p, ok := r.Bools.Lookup(key); ok {
		return p.Load()
	}
	return false
}

func (r *Registry) loadText(key string) string {
	if p, ok := r.Strings.Lookup(key); ok {
		return p.Load()
	}
	return ""
}

func splitEffects(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, EffectSep)
}
