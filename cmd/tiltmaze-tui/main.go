// Command tiltmaze-tui plays the maze in a terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/beka-birhanu/vinom-tilt/config"
	"github.com/beka-birhanu/vinom-tilt/game"
	"github.com/beka-birhanu/vinom-tilt/game/input"
	logger "github.com/beka-birhanu/vinom-tilt/infrastruture/log"
	"github.com/beka-birhanu/vinom-tilt/terminal"
	"github.com/gdamore/tcell/v2"
)

func main() {
	configPath := flag.String("config", os.Getenv("GAME_CONFIG"), "YAML file with game tuning")
	seed := flag.Int64("seed", 0, "maze seed, 0 picks one from the clock")
	mute := flag.Bool("mute", false, "disable sound")
	logPath := flag.String("log", "", "write logs to this file")
	flag.Parse()

	if err := run(*configPath, *seed, *mute, *logPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string, seed int64, mute bool, logPath string) error {
	var logOut io.Writer = io.Discard
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	appLogger, err := logger.New("TUI", config.ColorGreen, logOut)
	if err != nil {
		return err
	}
	defer func() { _ = appLogger.Sync() }()

	cfg, err := config.LoadGame(configPath)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	var sound terminal.Sound = terminal.Silent{}
	if !mute {
		sound = terminal.OpenSound()
	}
	defer sound.Close()

	keyboard := terminal.NewKeyboard(input.NewState(cfg.Input), terminal.DefaultHold)
	renderer := terminal.NewRenderer(screen, sound)
	g, err := game.New(cfg, game.Options{
		Renderer: renderer,
		Input:    keyboard,
		Seed:     seed,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g.Load()
	go g.Start(ctx)
	go logEvents(ctx, g, appLogger)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !handleEvent(ev, g, keyboard, renderer) {
				return nil
			}
		}
	}
}

// handleEvent applies one terminal event. It returns false when the player quits.
func handleEvent(ev tcell.Event, g *game.Game, kb *terminal.Keyboard, r *terminal.Renderer) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		r.Redraw()
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if k, ok := terminal.KeyFromEvent(ev); ok {
			kb.Press(k)
			return true
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case 'r':
				kb.ReleaseAll()
				g.Load()
			case '?':
				r.ToggleHint()
			}
		}
	}
	return true
}

func logEvents(ctx context.Context, g *game.Game, l *logger.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case e := <-g.Events():
			switch e.Type {
			case game.EventLoaded:
				l.Info(fmt.Sprintf("loaded %dx%d maze, seed %d", e.Cols, e.Rows, e.Seed))
			case game.EventFinished:
				l.Info(fmt.Sprintf("finished seed %d in %s, %d frames, %d bounces", e.Seed, e.Elapsed, e.Frames, e.Bounces))
			}
		}
	}
}
