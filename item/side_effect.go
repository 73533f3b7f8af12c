package item

import (
	"fmt"

	"github.com/lixenwraith/junk-mart/constants"
	"github.com/lixenwraith/junk-mart/effect"
	"github.com/lixenwraith/junk-mart/rng"
)

// Outcome is the kind of mishap caused by opening the wrong item
type Outcome int

const (
	NoEffect Outcome = iota
	MoneyLoss
	EnableEffect
	CureEffect
	ToggleEffect
	CancelRequest
)

var outcomeNames = [...]string{"none", "money_loss", "enable_effect", "cure_effect", "toggle_effect", "cancel_request"}

func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return "unknown"
	}
	return outcomeNames[o]
}

// SideEffect is one resolved mishap
type SideEffect struct {
	Outcome Outcome
	Text    string

	// Loss is set for MoneyLoss
	Loss int64

	// Effect and Turns are set for EnableEffect, Effect alone for CureEffect and ToggleEffect
	Effect effect.Kind
	Turns  int
}

type roller func(r *rng.Rand) SideEffect

func fixed(se SideEffect) roller {
	return func(*rng.Rand) SideEffect { return se }
}

func loss(base int64, format string) roller {
	return func(r *rng.Rand) SideEffect {
		money := RandomMoney(r, base)
		return SideEffect{Outcome: MoneyLoss, Loss: int64(money), Text: fmt.Sprintf(format, money)}
	}
}

func one(fn roller) rng.Entry[roller] {
	return rng.Entry[roller]{Weight: 1, Value: fn}
}

var sideEffects = [Count]rng.Table[roller]{
	Barrel: {
		one(fixed(SideEffect{Outcome: ToggleEffect, Effect: effect.Cancer})),
		one(loss(200, "You got scared and had to eat all the iodine tablets, didn't you? Restocking cost you %s!")),
		one(fixed(SideEffect{
			Outcome: EnableEffect, Effect: effect.Reshuffle, Turns: constants.ReshuffleTurns,
			Text: "The government raided the junkyard to find any more runaway radioactives! They sure left a mess and moved everything around!",
		})),
		one(loss(2000, "You had to go to the ER with severe radiation poisoning. You are ok now, but the bill was %s!")),
		one(fixed(SideEffect{
			Outcome: CancelRequest,
			Text:    "The radioactive goo spilled and made a mess! Luckily the customer helped you clean up, before promptly dying from radiation poisoning.",
		})),
	},
	Burger: {
		one(fixed(SideEffect{
			Outcome: EnableEffect, Effect: effect.Diarrhea, Turns: constants.DiarrheaTurns,
			Text: `You asked yourself, "what could go wrong" and ate the burger. That was when you felt your stomach slowly turning upside down.`,
		})),
		one(loss(500, "Clearly, a bite won't hurt? After a severe food poisoning, the hospital thinks otherwise. Your idiocy cost %s.")),
		one(fixed(SideEffect{
			Outcome: CancelRequest,
			Text:    `"Just a small bite," you muttered, "it won't hurt". Then you ran to the bathroom to puke. The customer got angry waiting and left.`,
		})),
		one(fixed(SideEffect{Outcome: NoEffect, Text: "Mmm, tasty!"})),
	},
	Gun: {
		one(loss(1000, "You accidentally shot yourself in the foot! An ambulance is on the way! Better have the %s in hand!")),
		one(fixed(SideEffect{
			Outcome: CancelRequest,
			Text:    "The bullet flew across the junkyard, ricocheting on walls, chests and the stop sign, finally arriving at the customer's head.",
		})),
		one(loss(250, "The illegal firearm discharge was reported to the police, the fine is %s!")),
		one(fixed(SideEffect{
			Outcome: NoEffect,
			Text:    "The bullet flew across the junkyard, ricocheting on walls, chests and the stop sign, finally exiting the building through the window. Let's hope nobody saw that.",
		})),
	},
	Pill: {
		one(fixed(SideEffect{
			Outcome: EnableEffect, Effect: effect.VisualDistortion, Turns: constants.DistortionTurns,
			Text: `"Mmm, a random pill!", you thought before eating it. Suddenly, your vision became funny.`,
		})),
		one(fixed(SideEffect{
			Outcome: EnableEffect, Effect: effect.Reshuffle, Turns: constants.ReshuffleTurns,
			Text: `After eating the pill, a sudden burst of energy ran through your body! "Must reorganize everything!" you cried, as you changed the position of all boxes!`,
		})),
		one(fixed(SideEffect{
			Outcome: CureEffect, Effect: effect.Diarrhea,
			Text: "You know the taste of this pill alright. It is Imodium!",
		})),
		one(loss(1500, "An inspector saw you holding this illegal drug. You paid him %s. Was it a fine or a bribe? Was he a real inspector? Who knows.")),
	},
	Screwdriver: {
		one(loss(100, "You got hurt with this rusty screwdriver and must get a tetanus shot! Have %s at the ready!")),
		one(fixed(SideEffect{
			Outcome: CancelRequest,
			Text:    "As this wasn't what you were searching for, you threw it behind you. The scream of the customer confirmed that the hit was fatal.",
		})),
		one(loss(1000, "As this wasn't what you were searching for, you threw it behind you. The scream of the customer confirmed that the hit was not fatal; you got sued for %s instead.")),
		one(fixed(SideEffect{
			Outcome: EnableEffect, Effect: effect.LightsOut, Turns: constants.LightsOutTurns,
			Text: `"I have a great idea!" you muttered as you stuck the screwdriver in a power outlet. The electrocution stopped abruptly as the neighborhood transformer exploded. Power will be out for a while, who knows why...`,
		})),
	},
}

// SideEffect rolls the mishap caused by handing out this item by mistake
func (i Item) SideEffect(r *rng.Rand) SideEffect {
	return sideEffects[i].Roll(r)(r)
}

var headlines = [Count][]string{
	Barrel: nil,
	Burger: {
		"A food poisoning epidemic ravages restaurant that feeds the homeless, junk food is to blame.",
		"A person died from a rare strain of streptococcus found in a burger.",
		"Food inspection closes luxurious restaurant after maggots found in burgers.",
	},
	Gun: {
		"Ten killed in the largest mass shooting our small town has ever seen.",
		"Armed burglars take all valuables from jewellery store, see more on page 10.",
		"Illegal hunting skyrockets as hunters with revoked licenses find new source of illegal guns.",
	},
	Pill: {
		"Horde of addicts storm police station, fatalities at five and still counting!",
		"CEO of large company overdosed on unidentified drugs, read page 5 for more!",
		"Mysterious drug completely cures patient from both cancer and AIDS, scientists baffled, drug is impossible to recreate!",
	},
	Screwdriver: {
		"Rapist with screwdriver shot and killed before he could commit more atrocities!",
		"Gun that shoots screwdrivers is the murder weapon, experts say!",
		"A Rube-Goldberg machine created entirely of screwdrivers falls on the head of the police chief, patrols are doubled!",
	},
}

// Headline returns a town headline caused by selling the item
// The special item has none; its consequences are scripted separately
func (i Item) Headline(r *rng.Rand) (string, bool) {
	choices := headlines[i]
	if len(choices) == 0 {
		return "", false
	}
	return rng.Pick(r, choices), true
}
