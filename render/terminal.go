package render

import (
	"fmt"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/junk-mart/config"
	"github.com/lixenwraith/junk-mart/core"
)

// TerminalService owns the tcell screen and polls its input
type TerminalService struct {
	newScreen func() (tcell.Screen, error)
	ready     func(tcell.Screen)
	screen    tcell.Screen
	eventCh   chan tcell.Event
	stopCh    chan struct{}
	mu        sync.Mutex
	running   bool
	stopOnce  sync.Once
}

// NewService creates a terminal service on the real terminal
func NewService() *TerminalService {
	return newService(tcell.NewScreen, nil)
}

// NewSimulationService creates a terminal service on an in-memory screen
func NewSimulationService(width, height int) *TerminalService {
	return newService(
		func() (tcell.Screen, error) { return tcell.NewSimulationScreen("UTF-8"), nil },
		func(s tcell.Screen) { s.SetSize(width, height) },
	)
}

func newService(factory func() (tcell.Screen, error), ready func(tcell.Screen)) *TerminalService {
	return &TerminalService{
		newScreen: factory,
		ready:     ready,
		eventCh:   make(chan tcell.Event, 256),
		stopCh:    make(chan struct{}),
	}
}

// Name implements Service
func (s *TerminalService) Name() string {
	return "terminal"
}

// Dependencies implements Service
func (s *TerminalService) Dependencies() []string {
	return []string{"status"}
}

// Init implements Service
// args[0]: color mode string (auto, 256, truecolor), defaults to auto
func (s *TerminalService) Init(args ...any) error {
	if len(args) > 0 {
		if mode, ok := args[0].(string); ok && mode == config.Color256 {
			// tcell reads this when the screen is created
			os.Setenv("TCELL_TRUECOLOR", "disable")
		}
	}

	screen, err := s.newScreen()
	if err != nil {
		return fmt.Errorf("terminal open: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()
	if s.ready != nil {
		s.ready(screen)
	}
	s.screen = screen
	return nil
}

// Start implements Service, launching the input polling goroutine
func (s *TerminalService) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return nil
	}
	if s.screen == nil {
		return fmt.Errorf("terminal start: not initialized")
	}
	s.running = true
	core.Go(s.pollLoop)
	return nil
}

// pollLoop forwards screen events until the screen is finalized
func (s *TerminalService) pollLoop() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.eventCh <- ev:
		case <-s.stopCh:
			return
		}
	}
}

// Stop implements Service, restoring the terminal
func (s *TerminalService) Stop() error {
	s.stopOnce.Do(func() {
		close(s.stopCh)
		if s.screen != nil {
			s.screen.Fini()
		}
	})
	return nil
}

// Fini restores the terminal, satisfying core.Finalizer for crash handling
func (s *TerminalService) Fini() {
	_ = s.Stop()
}

// Screen returns the initialized screen
func (s *TerminalService) Screen() tcell.Screen {
	return s.screen
}

// Events returns the input event stream
func (s *TerminalService) Events() <-chan tcell.Event {
	return s.eventCh
}
