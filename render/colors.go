package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/junk-mart/feed"
	"github.com/lixenwraith/junk-mart/item"
)

// RGB color definitions for the shop
var (
	RgbBackground = tcell.NewRGBColor(20, 18, 16)    // Near black
	RgbFloor      = tcell.NewRGBColor(38, 32, 28)    // Dark plank brown
	RgbFloorSeam  = tcell.NewRGBColor(58, 50, 42)    // Plank seams
	RgbChest      = tcell.NewRGBColor(120, 80, 40)   // Chest wood
	RgbChestEdge  = tcell.NewRGBColor(200, 150, 80)  // Chest trim
	RgbChestLift  = tcell.NewRGBColor(255, 205, 120) // Trim of a lifted chest
	RgbFront      = tcell.NewRGBColor(230, 230, 230) // Front slot marker

	RgbHUD     = tcell.NewRGBColor(255, 255, 255) // White
	RgbHUDBg   = tcell.NewRGBColor(40, 40, 60)    // Slate
	RgbMoney   = tcell.NewRGBColor(255, 215, 0)   // Gold
	RgbDebt    = tcell.NewRGBColor(255, 80, 80)   // Red balance
	RgbRequest = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbEffect  = tcell.NewRGBColor(200, 120, 255) // Violet
	RgbWar     = tcell.NewRGBColor(255, 120, 40)  // Orange

	RgbFeedExternal = tcell.NewRGBColor(140, 170, 220) // Town news
	RgbFeedEvent    = tcell.NewRGBColor(200, 200, 200) // Light gray
	RgbFeedCorrect  = tcell.NewRGBColor(100, 230, 100) // Green
	RgbFeedWrong    = tcell.NewRGBColor(255, 90, 90)   // Red
)

var itemColors = [item.Count]tcell.Color{
	item.Barrel:      tcell.NewRGBColor(120, 255, 60),  // Glowing green
	item.Burger:      tcell.NewRGBColor(230, 160, 70),  // Bun
	item.Gun:         tcell.NewRGBColor(170, 170, 190), // Gunmetal
	item.Pill:        tcell.NewRGBColor(255, 130, 200), // Pink
	item.Screwdriver: tcell.NewRGBColor(255, 220, 60),  // Yellow handle
}

// ItemColor returns the label color of an item
func ItemColor(it item.Item) tcell.Color {
	if it < 0 || int(it) >= len(itemColors) {
		return RgbHUD
	}
	return itemColors[it]
}

// LevelColor returns the feed color of a narration level
func LevelColor(l feed.Level) tcell.Color {
	switch l {
	case feed.External:
		return RgbFeedExternal
	case feed.Correct:
		return RgbFeedCorrect
	case feed.Wrong:
		return RgbFeedWrong
	default:
		return RgbFeedEvent
	}
}

// scaleColor multiplies the RGB channels by f, leaving default colors alone
func scaleColor(c tcell.Color, f float64) tcell.Color {
	if c == tcell.ColorDefault || !c.Valid() {
		return c
	}
	r, g, b := c.RGB()
	if r < 0 {
		return c
	}
	return tcell.NewRGBColor(scaleChannel(r, f), scaleChannel(g, f), scaleChannel(b, f))
}

func scaleChannel(v int32, f float64) int32 {
	s := float64(v) * f
	if s >= 255 {
		return 255
	}
	if s <= 0 {
		return 0
	}
	return int32(s)
}

// dimStyle scales both foreground and background of a style
func dimStyle(st tcell.Style, f float64) tcell.Style {
	fg, bg, attr := st.Decompose()
	return tcell.StyleDefault.Foreground(scaleColor(fg, f)).Background(scaleColor(bg, f)).Attributes(attr)
}
