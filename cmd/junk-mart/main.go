package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/junk-mart/audio"
	"github.com/lixenwraith/junk-mart/config"
	"github.com/lixenwraith/junk-mart/constants"
	"github.com/lixenwraith/junk-mart/core"
	"github.com/lixenwraith/junk-mart/engine"
	"github.com/lixenwraith/junk-mart/events"
	"github.com/lixenwraith/junk-mart/render"
	"github.com/lixenwraith/junk-mart/rng"
	"github.com/lixenwraith/junk-mart/service"
	"github.com/lixenwraith/junk-mart/status"
)

var (
	seedFlag  = flag.Uint64("seed", 0, "RNG seed, 0 picks one from the clock")
	colorFlag = flag.String("color", "", "Color mode: auto, truecolor, 256")
	muteFlag  = flag.Bool("mute", false, "Start with sound muted")
	debugFlag = flag.Bool("debug", false, "Write logs to the log directory")
	fpsFlag   = flag.Int("fps", 0, "Frame rate")
	skipFlag  = flag.Bool("skip-title", false, "Open the shop without the welcome screen")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid flags: %v\n", err)
		os.Exit(1)
	}

	logFile, logger := setupLogging(cfg.Debug, cfg.LogDir, cfg.LogLevel)
	if logFile != nil {
		defer logFile.Close()
	}
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("shop closed with error", "error", err)
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// applyFlags overrides config fields with flags given on the command line
func applyFlags(cfg *config.Config) error {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seedFlag
		case "color":
			cfg.Color = *colorFlag
		case "mute":
			cfg.Muted = *muteFlag
		case "debug":
			cfg.Debug = *debugFlag
		case "fps":
			cfg.FPS = *fpsFlag
		case "skip-title":
			cfg.SkipTitle = *skipFlag
		}
	})
	return cfg.Validate()
}

func run(cfg *config.Config, logger *slog.Logger) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	statusSvc := status.NewService()
	term := render.NewService()
	audioSvc := audio.NewService(logger)

	hub := service.NewHub()
	for _, svc := range []service.Service{statusSvc, term, audioSvc} {
		if err := hub.Register(svc); err != nil {
			return err
		}
	}
	if err := hub.InitAll(map[string][]any{
		term.Name():     {cfg.Color},
		audioSvc.Name(): {cfg.Muted, cfg.Volume},
	}); err != nil {
		return err
	}
	core.SetCrashTerminal(term)
	defer core.SetCrashTerminal(nil)
	defer func() {
		if err := hub.StopAll(); err != nil {
			logger.Warn("service shutdown", "error", err)
		}
	}()
	if err := hub.StartAll(); err != nil {
		return err
	}

	if !cfg.SkipTitle && !showTitle(term) {
		logger.Info("left at the welcome screen")
		return nil
	}

	reg := statusSvc.Registry()
	queue := events.NewEventQueue()
	defer func() { logger.Debug("event queue closed", "peak", queue.Peak()) }()
	shop, err := engine.New(engine.Config{
		Rand:   rng.New(seed),
		Events: queue,
		Status: reg,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("open shop: %w", err)
	}

	scene := render.NewScene(shop.State().Grid, logger)
	feedView := render.NewFeedView(constants.FeedLength)
	renderer := render.NewRenderer(term.Screen(), scene, feedView, reg)

	router := events.NewRouter[time.Time](queue)
	router.Register(scene)
	router.Register(feedView)
	player := audioSvc.Player()
	if player != nil {
		router.Register(audio.NewSystem(player, logger))
		reg.Bools.Get(status.KeyMuted).Store(player.IsMuted())
	}
	router.Register(events.HandlerFunc[time.Time]{
		Types: []events.EventType{events.EventTurnComplete, events.EventWin},
		Fn: func(_ time.Time, ev events.GameEvent) {
			if p, ok := ev.Payload.(*events.TurnCompletePayload); ok {
				logger.Debug("turn complete", "turn", p.Turn, "balance", p.Balance)
				return
			}
			logger.Info("war won", "seed", seed)
		},
	})

	shop.Start()
	logger.Info("session started", "seed", seed, "fps", cfg.FPS, "audio", player != nil)

	clock := engine.NewFrameClock(engine.NewMonotonicTimeProvider())
	frameTicker := time.NewTicker(cfg.FrameInterval())
	defer frameTicker.Stop()

	// Scene time follows the engine clock so paused time never skips animations
	sceneTime := time.Now()
	var pointer render.Pointer

	for {
		select {
		case ev := <-term.Events():
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return nil
				}
				if ev.Key() == tcell.KeyRune && ev.Rune() == 'm' && player != nil {
					reg.Bools.Get(status.KeyMuted).Store(player.ToggleMute())
				}

			case *tcell.EventMouse:
				pe := pointer.Mouse(ev, renderer.Layout())
				renderer.SetPointer(pe.Col, pe.Row)
				if pe.Moved {
					shop.PointerMoved(pe.X, pe.Y)
				}
				if pe.Released && shop.PointerReleased() {
					logger.Debug("chest clicked", "x", pe.X, "y", pe.Y)
				}

			case *tcell.EventResize:
				w, h := ev.Size()
				renderer.Resize(w, h)
				term.Screen().Sync()

			case *tcell.EventFocus:
				if ev.Focused {
					clock.Resume()
				} else {
					clock.Pause()
				}
			}

		case <-frameTicker.C:
			dt := clock.Delta()
			shop.Tick(dt)
			sceneTime = sceneTime.Add(dt)
			router.DispatchAll(sceneTime)
			renderer.Draw(sceneTime)
		}
	}
}

// showTitle blocks on the welcome screen and reports whether the player chose to start
func showTitle(term *render.TerminalService) bool {
	title := render.NewTitle(term.Screen())
	title.Draw()
	for ev := range term.Events() {
		if _, ok := ev.(*tcell.EventResize); ok {
			term.Screen().Sync()
		}
		switch title.HandleEvent(ev) {
		case render.TitleStart:
			return true
		case render.TitleExit:
			return false
		}
		title.Draw()
	}
	return false
}
