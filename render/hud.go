package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/junk-mart/status"
)

// hudField is one colored span of the HUD
type hudField struct {
	text  string
	color tcell.Color
}

// hudLines builds the two HUD rows from the published registry
func hudLines(reg *status.Registry) (top, bottom []hudField) {
	snap := reg.Snapshot()

	money := RgbMoney
	if snap.Balance < 0 {
		money = RgbDebt
	}
	top = []hudField{
		{" JUNK-MART ", RgbHUD},
		{fmt.Sprintf(" $%d ", snap.Balance), money},
		{fmt.Sprintf(" Customer %d/%d ", snap.Turn, snap.Target), RgbHUD},
	}
	if snap.Request != "" {
		top = append(top, hudField{fmt.Sprintf(" Wants %q ", snap.Request), RgbRequest})
	}
	switch {
	case snap.Won:
		top = append(top, hudField{" WAR IS OVER ", RgbWar})
	case snap.War:
		top = append(top, hudField{" AT WAR ", RgbWar})
	}

	if len(snap.Effects) > 0 {
		bottom = append(bottom, hudField{" " + strings.Join(snap.Effects, " ") + " ", RgbEffect})
	}
	hint := " [click] open chest  [m] mute  [q] quit "
	if snap.Muted {
		hint = " [click] open chest  [m] unmute  [q] quit "
	}
	bottom = append(bottom, hudField{hint, RgbFeedEvent})
	return top, bottom
}
