package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/surf-scout/audio"
	"github.com/lixenwraith/surf-scout/config"
	"github.com/lixenwraith/surf-scout/engine"
	"github.com/lixenwraith/surf-scout/input"
	"github.com/lixenwraith/surf-scout/invariant"
	"github.com/lixenwraith/surf-scout/logging"
	"github.com/lixenwraith/surf-scout/obstacle"
	"github.com/lixenwraith/surf-scout/parameter"
	"github.com/lixenwraith/surf-scout/render"
	"github.com/lixenwraith/surf-scout/systems"
	"github.com/lixenwraith/surf-scout/vmath"
)

var (
	configFlag = flag.String("config", "", "YAML config file (defaults when empty)")
	logFlag    = flag.String("log", "", "Log file (no logging when empty)")
	debugFlag  = flag.Bool("debug", false, "Debug log level")
	seedFlag   = flag.String("seed", "", "Seed phrase overriding the config seed")
	muteFlag   = flag.Bool("mute", false, "Disable audio cues")
	keysFlag   = flag.String("keys", "", "YAML key binding overrides")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "surf-scout: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if *seedFlag != "" {
		cfg.SeedPhrase = *seedFlag
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}

	logger, err := logging.New(*logFlag, *debugFlag)
	if err != nil {
		return err
	}
	defer logger.Sync()

	invariant.SetReporter(func(msg string) {
		logger.Warn("invariant violated", zap.String("invariant", msg))
	})

	keys, err := loadKeys(*keysFlag)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer restoreOnPanic(screen)
	defer screen.Fini()

	cues := audio.NewCuePlayer(cfg.Audio)
	if err := cues.Open(); err != nil {
		logger.Warn("audio unavailable, continuing without cues", zap.Error(err))
	}
	defer cues.Close()

	session := engine.NewSession(cfg, obstacle.DefaultCatalog(), vmath.NewFastRand(cfg.RNGSeed()), logger)
	systems.RegisterAll(session, cfg)

	logger.Info("surf-scout ready",
		zap.Uint64("seed", cfg.RNGSeed()),
		zap.Float64("scene_far", cfg.SceneFar()),
		zap.Float64("scene_near", cfg.SceneNear()),
		zap.String("spawn_trial", cfg.Spawn.Trial),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	events := make(chan tcell.Event, 64)
	g, ctx := errgroup.WithContext(ctx)

	// PollEvent blocks until an event arrives or the screen is finalized
	g.Go(func() error {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		defer restoreOnPanic(screen)
		defer screen.Fini()
		return frameLoop(ctx, screen, session, cues, keys, events, logger)
	})

	return g.Wait()
}

// loadKeys builds the key collector, applying overrides from path when set
func loadKeys(path string) (*input.Collector, error) {
	table := input.DefaultKeyTable()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read keymap: %w", err)
		}
		override, err := input.LoadKeyConfig(data)
		if err != nil {
			return nil, err
		}
		table = input.MergeKeyTable(table, override)
	}
	return input.NewCollector(table, input.DefaultHoldWindow), nil
}

// restoreOnPanic finalizes the screen before printing a crash so the trace
// lands on a usable terminal
func restoreOnPanic(screen tcell.Screen) {
	if r := recover(); r != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "\x1b[31mSURF-SCOUT CRASHED: %v\x1b[0m\nStack Trace:\n%s\n", r, debug.Stack())
		os.Exit(1)
	}
}

// frameLoop owns the session: key events and frame ticks are serialized here
func frameLoop(ctx context.Context, screen tcell.Screen, session *engine.Session, cues *audio.CuePlayer,
	keys *input.Collector, events <-chan tcell.Event, logger *zap.Logger) error {

	cfg := session.World().Config
	view := render.NewTerminalRenderer(screen, cfg.SceneNear(), cfg.SceneFar())
	clock := engine.NewFrameClock(engine.NewTimeProvider())

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				keys.HandleKey(ev, ev.When())
				if keys.QuitRequested() {
					logger.Info("quit", zap.Float64("score", session.Snapshot().Score))
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			elapsed, delta := clock.Tick()
			session.Frame(elapsed, delta, keys.Snapshot(now))

			drained := session.DrainEvents()
			cues.HandleEvents(drained)
			for _, ev := range drained {
				logger.Debug("event",
					zap.Stringer("type", ev.Type),
					zap.Uint64("frame", ev.Frame),
					zap.Int("int", ev.Int),
					zap.Float64("value", ev.Value),
				)
			}

			snap := session.Snapshot()
			view.Begin()
			session.Render(view)
			view.DrawHUD(render.HUD{
				Phase:      snap.Phase.String(),
				Score:      snap.Score,
				Lives:      snap.Lives,
				MaxLives:   snap.MaxLives,
				Difficulty: snap.Difficulty,
				Speed:      snap.Speed,
				Sprint:     snap.Sprint,
			})
			view.End()
		}
	}
}
