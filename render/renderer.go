package render

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/junk-mart/constants"
	"github.com/lixenwraith/junk-mart/core"
	"github.com/lixenwraith/junk-mart/feed"
	"github.com/lixenwraith/junk-mart/status"
	"github.com/lixenwraith/junk-mart/tween"
	"github.com/lixenwraith/junk-mart/vmath"
)

// Chest box footprint in cells
const (
	chestBoxWidth  = constants.ChestCellWidth - 2
	chestBoxHeight = constants.ChestCellHeight - 1
)

// Renderer draws one frame of the shop onto a tcell screen
type Renderer struct {
	screen tcell.Screen
	layout Layout
	scene  *Scene
	feed   *FeedView
	reg    *status.Registry

	pointerCol, pointerRow int
}

// NewRenderer sizes the layout from the screen
func NewRenderer(screen tcell.Screen, scene *Scene, fv *FeedView, reg *status.Registry) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen:     screen,
		layout:     NewLayout(w, h),
		scene:      scene,
		feed:       fv,
		reg:        reg,
		pointerCol: -1,
		pointerRow: -1,
	}
}

// Resize recomputes the layout after a terminal resize
func (r *Renderer) Resize(width, height int) {
	r.layout = NewLayout(width, height)
}

// Layout returns the current layout for pointer mapping
func (r *Renderer) Layout() Layout {
	return r.layout
}

// SetPointer records the mouse cell for the spotlight
func (r *Renderer) SetPointer(col, row int) {
	r.pointerCol, r.pointerRow = col, row
}

// Draw advances the scene to now and presents a full frame
func (r *Renderer) Draw(now time.Time) {
	r.scene.Advance(now)

	r.screen.Fill(' ', tcell.StyleDefault.Background(RgbBackground))
	r.drawFloor()

	visuals := r.scene.Visuals()
	for _, v := range visuals {
		if !v.Presented {
			r.drawChest(v)
		}
	}
	if f := r.scene.Focus(); f > 0 {
		r.dimFloor(1 - (1-constants.FocusDimFactor)*f)
	}
	for _, v := range visuals {
		if v.Presented {
			r.drawItem(v)
		}
	}

	state := r.scene.State()
	if !state.GlobalLights {
		r.applyDarkness(state.PointerLight)
	}
	if state.Distortion {
		r.applyDistortion(now)
	}

	r.drawHUD()
	r.drawFeed()
	r.screen.Show()
}

// sceneRows is the row range the floor and lifted visuals can occupy
func (r *Renderer) sceneRows() (top, bottom int) {
	return constants.HUDHeight, r.layout.Top + FloorRows + 1
}

func (r *Renderer) drawFloor() {
	l := r.layout
	floor := tcell.StyleDefault.Background(RgbFloor).Foreground(RgbFloorSeam)
	for row := l.Top; row < l.Top+FloorRows; row++ {
		for col := l.Left; col < l.Left+FloorCols; col++ {
			ch := ' '
			if (col-l.Left)%constants.ChestCellWidth == 0 {
				ch = '┊'
			}
			r.screen.SetContent(col, row, ch, nil, floor)
		}
	}
	// Front slot marker under the front chest
	col, _ := l.WorldToCell(tween.ChestPos(core.Front))
	drawText(r.screen, col-2, l.Top+FloorRows, "FRONT", tcell.StyleDefault.Background(RgbBackground).Foreground(RgbFront))
}

func (r *Renderer) drawChest(v Visual) {
	col, row := r.layout.WorldToCell(v.Pos)
	left := col - chestBoxWidth/2
	top := row - chestBoxHeight/2

	trim := RgbChestEdge
	if v.Pos.Z > 0.01 {
		trim = RgbChestLift
	}
	edge := tcell.StyleDefault.Background(RgbChest).Foreground(trim)
	body := tcell.StyleDefault.Background(RgbChest).Foreground(scaleColor(RgbChest, 1.4))

	for dy := 0; dy < chestBoxHeight; dy++ {
		for dx := 0; dx < chestBoxWidth; dx++ {
			ch, st := '▒', body
			switch {
			case dy == 0 && dx == 0:
				ch, st = '┌', edge
			case dy == 0 && dx == chestBoxWidth-1:
				ch, st = '┐', edge
			case dy == chestBoxHeight-1 && dx == 0:
				ch, st = '└', edge
			case dy == chestBoxHeight-1 && dx == chestBoxWidth-1:
				ch, st = '┘', edge
			case dy == 0 || dy == chestBoxHeight-1:
				ch, st = '─', edge
			case dx == 0 || dx == chestBoxWidth-1:
				ch, st = '│', edge
			}
			r.screen.SetContent(left+dx, top+dy, ch, nil, st)
		}
	}
}

func (r *Renderer) drawItem(v Visual) {
	label := "[ " + v.Item.String() + " ]"
	col, row := r.layout.WorldToCell(v.Pos)
	st := tcell.StyleDefault.Background(RgbBackground).Foreground(ItemColor(v.Item)).Bold(true)
	drawText(r.screen, col-len(label)/2, row, label, st)

	// Close-up caption once the camera has turned to the front chest
	if r.scene.Focus() > 0.5 {
		caption := "~ " + v.Item.String() + " ~"
		drawText(r.screen, r.layout.Left+(FloorCols-len(caption))/2, r.layout.Top-1, caption, st)
	}
}

// dimFloor scales every cell of the scene rows by f
func (r *Renderer) dimFloor(f float64) {
	top, bottom := r.sceneRows()
	r.eachCell(top, bottom, func(col, row int, st tcell.Style) tcell.Style {
		return dimStyle(st, f)
	})
}

// applyDarkness blacks out the scene except for a pointer spotlight of the given intensity
func (r *Renderer) applyDarkness(pointerLight float64) {
	top, bottom := r.sceneRows()
	r.eachCell(top, bottom, func(col, row int, st tcell.Style) tcell.Style {
		f := constants.DarkFactor
		if pointerLight > 0 && r.pointerCol >= 0 {
			// Rows are about twice as tall as columns are wide
			dist := math.Hypot(float64(col-r.pointerCol), 2*float64(row-r.pointerRow))
			lit := pointerLight * (1 - dist/constants.SpotlightRadius)
			f = math.Max(f, vmath.Clamp(lit, 0, 1))
		}
		return dimStyle(st, f)
	})
}

// applyDistortion shifts each scene row sideways along a moving sine
func (r *Renderer) applyDistortion(now time.Time) {
	top, bottom := r.sceneRows()
	w := r.layout.Width
	if w <= 0 {
		return
	}
	phase := float64(now.UnixMilli()%100_000) / 1000 * 6
	type cell struct {
		ch    rune
		comb  []rune
		style tcell.Style
	}
	buf := make([]cell, w)
	for row := top; row < bottom; row++ {
		shift := int(math.Round(constants.DistortionAmplitude * math.Sin(phase+float64(row)*0.7)))
		if shift == 0 {
			continue
		}
		for col := 0; col < w; col++ {
			ch, comb, st, _ := r.screen.GetContent(col, row)
			buf[col] = cell{ch, comb, st}
		}
		for col := 0; col < w; col++ {
			src := ((col-shift)%w + w) % w
			r.screen.SetContent(col, row, buf[src].ch, buf[src].comb, buf[src].style)
		}
	}
}

// eachCell rewrites the style of every cell in [top, bottom)
func (r *Renderer) eachCell(top, bottom int, fn func(col, row int, st tcell.Style) tcell.Style) {
	for row := top; row < bottom; row++ {
		for col := 0; col < r.layout.Width; col++ {
			ch, comb, st, _ := r.screen.GetContent(col, row)
			r.screen.SetContent(col, row, ch, comb, fn(col, row, st))
		}
	}
}

func (r *Renderer) drawHUD() {
	if r.reg == nil {
		return
	}
	top, bottom := hudLines(r.reg)
	for row, fields := range [][]hudField{top, bottom} {
		bg := tcell.StyleDefault.Background(RgbHUDBg)
		for col := 0; col < r.layout.Width; col++ {
			r.screen.SetContent(col, row, ' ', nil, bg)
		}
		col := 0
		for _, f := range fields {
			col = drawText(r.screen, col, row, f.text, bg.Foreground(f.color))
		}
	}
}

func (r *Renderer) drawFeed() {
	l := r.layout
	if l.FeedRows < 2 {
		return
	}
	rule := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbFloorSeam)
	for col := 0; col < l.Width; col++ {
		r.screen.SetContent(col, l.FeedTop, '─', nil, rule)
	}
	drawText(r.screen, 2, l.FeedTop, " news ", rule.Foreground(RgbHUD))

	for i, e := range r.feed.Tail(l.FeedRows - 1) {
		st := tcell.StyleDefault.Background(RgbBackground).Foreground(LevelColor(e.Level))
		if e.Level == feed.Wrong {
			st = st.Bold(true)
		}
		drawText(r.screen, 1, l.FeedTop+1+i, truncate(e.Text, l.Width-2), st)
	}
}

// drawText writes a single-width string and returns the column after it
func drawText(s tcell.Screen, col, row int, text string, st tcell.Style) int {
	for _, ch := range text {
		s.SetContent(col, row, ch, nil, st)
		col++
	}
	return col
}

// truncate shortens text to n runes, marking the cut with an ellipsis
func truncate(text string, n int) string {
	runes := []rune(text)
	if n <= 0 {
		return ""
	}
	if len(runes) <= n {
		return text
	}
	return string(runes[:n-1]) + "…"
}
