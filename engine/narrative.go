package engine

import (
	"fmt"

	"github.com/lixenwraith/junk-mart/constants"
	"github.com/lixenwraith/junk-mart/effect"
	"github.com/lixenwraith/junk-mart/ledger"
	"github.com/lixenwraith/junk-mart/rng"
)

var tutorialLines = []string{
	"I hear you inherited this junkyard and decided to sell whatever is inside! Good for you! You should click a box to see what is inside!",
	"Damn, son, I can see that you no longer have money to pay me! You are on your own, bye!",
}

// Nobody was waiting when the item came out of the chest
var misfireLines = []string{
	"You waved the thing around at an empty shop floor, slipped and fell into the pile of boxes.",
	"The boxes collapsed on you. The paramedics needed two hours and a crowbar to get you out.",
	fmt.Sprintf("The hospital bill came to %s and the boxes are all over the place now.", ledger.Money(constants.MisfirePenalty)),
}

// Scripted escalation after the special item was sold, one line per turn
var warLines = []string{
	"Unknown militia claims to own a dirty bomb, government denies any missing nuclear material.",
	"Border skirmishes escalate after radioactive goo found at a checkpoint, both sides blame each other.",
	"War declared! Entire cities evacuated as armies mobilize along the border.",
	"The war is over as quickly as it started. Nobody won, except the junkyard that supplied both sides.",
}

const winLine = "You single-handedly started and profited from a war. The junkyard is the richest business in the country. You win!"

var (
	earlyArrivals = []string{
		"A customer walks in. They want %s.",
		"The door bell rings. Someone is looking for %s.",
	}
	midArrivals = []string{
		"Another customer shows up asking for %s.",
		"A shady figure leans over the counter and whispers that they need %s.",
		"Word of your junkyard is spreading. A customer demands %s.",
	}
	finaleArrivals = []string{
		"A man in a uniform with too many medals walks in. He wants %s, and he pays very well.",
	}
	lateArrivals = []string{
		"Business as usual, if you can call this usual. A customer wants %s.",
		"Even after everything, people still come by. This one needs %s.",
	}
)

func arrivalLine(r *rng.Rand, turn int, phrase string) string {
	var lines []string
	switch {
	case turn <= constants.EarlyTierLast:
		lines = earlyArrivals
	case turn <= constants.TurnTarget:
		lines = midArrivals
	case turn == constants.FinaleTurn:
		lines = finaleArrivals
	default:
		lines = lateArrivals
	}
	return fmt.Sprintf(rng.Pick(r, lines), phrase)
}

func reminderLine(phrase string) string {
	return fmt.Sprintf("The customer is still standing there, waiting for %s.", phrase)
}

func foundLine(found string) string {
	return fmt.Sprintf("You open the box and find %s.", found)
}

func saleLine(found string, gain ledger.Money) string {
	return fmt.Sprintf("The customer happily paid %s for the %s.", gain, found)
}

func mismatchLine(wanted, found string) string {
	return fmt.Sprintf("The customer wanted %s, but you found %s.", wanted, found)
}

const (
	cancerOnLine  = "Touching the goo with bare hands was not the best idea. You have been diagnosed with cancer, the treatment will not be cheap."
	cancerOffLine = "The goo glowed green, your tumors shrank and vanished. Doctors call it a miracle. You stop paying for treatment."
	cureLine      = "Your stomach finally calms down. No more running to the bathroom!"
)

var (
	diarrheaLines = []string{
		"You had to run to the bathroom again. The customer tapped their foot impatiently.",
		"Another bathroom break. The whole junkyard smells now.",
	}
	diarrheaCancelLines = []string{
		"You spent so long in the bathroom that the customer gave up and left.",
		"When you came back from the bathroom the customer was gone, along with your dignity.",
	}
)

func cancerBillLine(bill ledger.Money) string {
	return fmt.Sprintf("Chemotherapy session paid, %s gone.", bill)
}

// Lines posted when a timed effect wears off; Reshuffle has none and Cancer never times out
var endedLines = map[effect.Kind]string{
	effect.LightsOut:        "The power company finally replaced the transformer. Let there be light!",
	effect.VisualDistortion: "Whatever was in that pill, it wore off. The world looks normal again.",
	effect.Diarrhea:         "Your bowels have settled down on their own.",
}
