package render

import "github.com/gdamore/tcell/v2"

// TitleChoice is the outcome of the welcome screen
type TitleChoice int

const (
	TitlePending TitleChoice = iota
	TitleStart
	TitleExit
)

const (
	titleHeading = "Welcome to Junk-Mart"
	titleMotto   = "We will find what you ask, or die trying!"
	titleStart   = "[ START ]"
	titleExit    = "[ EXIT ]"
	titleTease   = "WHY THO"
	titleFooter  = "[enter] start  [q] exit"
)

// Struck-through taglines under the heading
var titleStruck = []string{
	"Where dreams come to die",
	"Where we fnid the itmespbb",
}

// titleButton is a clickable label on one row
type titleButton struct {
	choice   TitleChoice
	text     string
	col, row int
}

func (b titleButton) contains(col, row int) bool {
	return row == b.row && col >= b.col && col < b.col+len([]rune(b.text))
}

// Title is the welcome screen shown before the shop opens
type Title struct {
	screen        tcell.Screen
	width, height int
	buttons       [2]titleButton
	hover         TitleChoice
	pressed       bool
}

func NewTitle(screen tcell.Screen) *Title {
	t := &Title{screen: screen}
	w, h := screen.Size()
	t.Resize(w, h)
	return t
}

// Resize recenters the screen content
func (t *Title) Resize(width, height int) {
	t.width, t.height = width, height
	mid := height / 2
	t.buttons = [2]titleButton{
		{choice: TitleStart, text: titleStart, col: centered(width, titleStart), row: mid + 2},
		{choice: TitleExit, text: titleExit, col: centered(width, titleExit), row: mid + 4},
	}
}

// Hover reports the button under the pointer
func (t *Title) Hover() TitleChoice {
	return t.hover
}

// HandleEvent feeds one terminal event and returns the choice it made
func (t *Title) HandleEvent(ev tcell.Event) TitleChoice {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEnter, ev.Key() == tcell.KeyRune && ev.Rune() == 's':
			return TitleStart
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC,
			ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return TitleExit
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		t.hover = TitlePending
		for _, b := range t.buttons {
			if b.contains(col, row) {
				t.hover = b.choice
			}
		}
		down := ev.Buttons()&tcell.Button1 != 0
		released := t.pressed && !down
		t.pressed = down
		if released {
			return t.hover
		}

	case *tcell.EventResize:
		t.Resize(ev.Size())
	}
	return TitlePending
}

// Draw presents the welcome screen
func (t *Title) Draw() {
	bg := tcell.StyleDefault.Background(RgbBackground)
	t.screen.Fill(' ', bg)

	mid := t.height / 2
	row := mid - 3 - len(titleStruck)
	drawCentered(t.screen, t.width, row, titleHeading, bg.Foreground(RgbRequest).Bold(true))
	row += 2
	for _, line := range titleStruck {
		drawCentered(t.screen, t.width, row, line, bg.Foreground(RgbFeedEvent).StrikeThrough(true))
		row++
	}
	drawCentered(t.screen, t.width, row, titleMotto, bg.Foreground(RgbRequest))

	for _, b := range t.buttons {
		st := bg.Foreground(RgbHUD)
		if b.choice == t.hover {
			st = bg.Foreground(RgbMoney).Bold(true)
		}
		end := drawText(t.screen, b.col, b.row, b.text, st)
		if b.choice == TitleExit && t.hover == TitleExit {
			drawText(t.screen, end+2, b.row, titleTease, bg.Foreground(RgbDebt))
		}
	}

	if t.height > 0 {
		drawCentered(t.screen, t.width, t.height-1, titleFooter, bg.Foreground(RgbFeedEvent))
	}
	t.screen.Show()
}

func centered(width int, text string) int {
	return max(0, (width-len([]rune(text)))/2)
}

func drawCentered(s tcell.Screen, width, row int, text string, st tcell.Style) {
	drawText(s, centered(width, text), row, truncate(text, width), st)
}
