// Command shop-sim plays the shop headlessly with a fixed policy and prints
// the news feed, for balancing and for replaying a seed.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lixenwraith/junk-mart/config"
	"github.com/lixenwraith/junk-mart/engine"
	"github.com/lixenwraith/junk-mart/events"
	"github.com/lixenwraith/junk-mart/rng"
	"github.com/lixenwraith/junk-mart/status"
	"github.com/lixenwraith/junk-mart/tween"
)

const (
	defaultMaxTurns = 200
	defaultStep     = 33 * time.Millisecond

	// stepLimit guards against a script that never drains
	stepLimit = 1_000_000
)

// Summary is the outcome of one simulated session
type Summary struct {
	Seed     uint64
	Turns    int
	Customer int
	Balance  int64
	Won      bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("shop-sim", flag.ContinueOnError)
	fs.SetOutput(stderr)
	seed := fs.Uint64("seed", 0, "RNG seed, 0 uses JUNKMART_SEED or the clock")
	turns := fs.Int("turns", defaultMaxTurns, "Maximum turns to play")
	policyName := fs.String("policy", "oracle", "Chest policy: oracle, random, contrary")
	step := fs.Duration("step", defaultStep, "Simulated frame delta")
	quiet := fs.Bool("quiet", false, "Print only the summary")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *step <= 0 || *turns < 0 {
		fmt.Fprintln(stderr, "-step must be positive and -turns not negative")
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
		return 1
	}
	if *seed == 0 {
		*seed = cfg.Seed
	}
	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	policy, err := PolicyByName(*policyName, rng.New(*seed+1))
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 2
	}

	out := stdout
	if *quiet {
		out = io.Discard
	}
	sum, err := simulate(*seed, *turns, *step, policy, out, logger)
	if err != nil {
		logger.Error("simulation failed", "seed", *seed, "error", err)
		return 1
	}
	fmt.Fprintf(stdout, "seed=%d turns=%d customer=%d balance=$%d won=%t\n",
		sum.Seed, sum.Turns, sum.Customer, sum.Balance, sum.Won)
	return 0
}

// simulate plays up to maxTurns turns, printing every narration line to out
func simulate(seed uint64, maxTurns int, step time.Duration, policy Policy, out io.Writer, logger *slog.Logger) (Summary, error) {
	queue := events.NewEventQueue()
	reg := status.NewRegistry()
	shop, err := engine.New(engine.Config{Rand: rng.New(seed), Events: queue, Status: reg, Logger: logger})
	if err != nil {
		return Summary{}, fmt.Errorf("open shop: %w", err)
	}

	router := events.NewRouter[time.Time](queue)
	router.Register(events.HandlerFunc[time.Time]{
		Types: []events.EventType{events.EventNewsPosted},
		Fn: func(_ time.Time, ev events.GameEvent) {
			if p, ok := ev.Payload.(*events.NewsPayload); ok {
				fmt.Fprintf(out, "[%-8s] %s\n", p.Entry.Level, p.Entry.Text)
			}
		},
	})
	router.Register(events.HandlerFunc[time.Time]{
		Types: []events.EventType{events.EventTurnComplete},
		Fn: func(_ time.Time, ev events.GameEvent) {
			if p, ok := ev.Payload.(*events.TurnCompletePayload); ok {
				fmt.Fprintf(out, "---- customer %d, balance $%d\n", p.Turn, p.Balance)
			}
		},
	})

	clock := time.Unix(0, 0)
	shop.Start()
	router.DispatchAll(clock)

	ts := shop.State()
	turns := 0
	for ; turns < maxTurns && !ts.Won; turns++ {
		sel := policy(ts)
		p := tween.ChestPos(sel)
		shop.PointerMoved(p.X, p.Y)
		if !shop.PointerReleased() {
			return Summary{}, fmt.Errorf("turn %d: click on %v rejected", turns, sel)
		}
		for i := 0; shop.Busy(); i++ {
			if i >= stepLimit {
				return Summary{}, fmt.Errorf("turn %d: script did not drain", turns)
			}
			shop.Tick(step)
			clock = clock.Add(step)
			router.DispatchAll(clock)
		}
	}

	snap := reg.Snapshot()
	return Summary{
		Seed:     seed,
		Turns:    turns,
		Customer: int(snap.Turn),
		Balance:  snap.Balance,
		Won:      snap.Won,
	}, nil
}
