package render

import (
	"math"

	"github.com/lixenwraith/junk-mart/constants"
	"github.com/lixenwraith/junk-mart/vmath"
)

// Cells per world unit on the floor plane
const (
	colsPerUnit = constants.ChestCellWidth / constants.ChestSpacing
	rowsPerUnit = constants.ChestCellHeight / constants.ChestSpacing
)

// Floor footprint in cells, covering the pointer bounds
var (
	FloorCols = int(math.Ceil((constants.PointerMaxX - constants.PointerMinX) * colsPerUnit))
	FloorRows = int(math.Ceil((constants.PointerMaxY - constants.PointerMinY) * rowsPerUnit))
)

// Layout places the shop floor, HUD and feed on the terminal
// The floor is a top-down projection: world +X is right, world +Y is up the screen
// and height raises a visual by LiftRowsPerUnit rows per unit
type Layout struct {
	Width, Height int
	Left, Top     int // Top-left cell of the floor
	FeedTop       int // First feed row
	FeedRows      int
}

// NewLayout centers the floor horizontally below the HUD
func NewLayout(width, height int) Layout {
	l := Layout{Width: width, Height: height}
	l.Left = max(0, (width-FloorCols)/2)
	l.Top = constants.HUDHeight + constants.FloorTopMargin
	l.FeedTop = l.Top + FloorRows + 1
	l.FeedRows = max(0, height-l.FeedTop)
	return l
}

// WorldToCell projects a world position to a terminal cell
func (l Layout) WorldToCell(p vmath.Vec3F) (col, row int) {
	col = l.Left + int(math.Floor((p.X-constants.PointerMinX)*colsPerUnit))
	row = l.Top + int(math.Floor((constants.PointerMaxY-p.Y)*rowsPerUnit))
	row -= int(math.Round(p.Z * constants.LiftRowsPerUnit))
	return col, row
}

// CellToWorld maps the center of a terminal cell back to the floor plane
// Cells outside the floor map outside the pointer bounds
func (l Layout) CellToWorld(col, row int) (x, y float64) {
	x = constants.PointerMinX + (float64(col-l.Left)+0.5)/colsPerUnit
	y = constants.PointerMaxY - (float64(row-l.Top)+0.5)/rowsPerUnit
	return x, y
}

// OnFloor reports whether a cell lies inside the floor rectangle
func (l Layout) OnFloor(col, row int) bool {
	return col >= l.Left && col < l.Left+FloorCols && row >= l.Top && row < l.Top+FloorRows
}

// FeedVisible reports whether the terminal is tall enough for the minimum feed
func (l Layout) FeedVisible() bool {
	return l.FeedRows >= constants.FeedMinRows
}
