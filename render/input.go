package render

import "github.com/gdamore/tcell/v2"

// PointerEvent is a mouse event translated to floor coordinates
type PointerEvent struct {
	Col, Row int
	X, Y     float64
	Moved    bool // Pointer entered a different cell
	Released bool // Primary button went up
}

// Pointer turns raw tcell mouse reports into moves and releases
// tcell reports button state, not transitions, so the press is remembered here
type Pointer struct {
	col, row int
	pressed  bool
	seen     bool
}

// Mouse translates one mouse event against the current layout
func (p *Pointer) Mouse(ev *tcell.EventMouse, l Layout) PointerEvent {
	col, row := ev.Position()
	x, y := l.CellToWorld(col, row)
	out := PointerEvent{Col: col, Row: row, X: x, Y: y}

	if !p.seen || col != p.col || row != p.row {
		out.Moved = true
		p.col, p.row, p.seen = col, row, true
	}

	down := ev.Buttons()&tcell.Button1 != 0
	if p.pressed && !down {
		out.Released = true
	}
	p.pressed = down
	return out
}
