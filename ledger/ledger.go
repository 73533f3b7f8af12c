// Package ledger holds the shop's single signed balance.
package ledger

import "strconv"

// Money is a signed amount of whole dollars
type Money int64

// String formats as $<integer>, negative amounts keep their sign after the unit
func (m Money) String() string {
	return "$" + strconv.FormatInt(int64(m), 10)
}

// Ledger tracks the balance; no floor is enforced
type Ledger struct {
	balance Money
}

// New returns a ledger opened with the given balance
func New(opening Money) *Ledger {
	return &Ledger{balance: opening}
}

// Add applies a signed delta and returns the new balance
func (l *Ledger) Add(delta Money) Money {
	l.balance += delta
	return l.balance
}

// Balance returns the current balance
func (l *Ledger) Balance() Money {
	return l.balance
}
