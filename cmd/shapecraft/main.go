package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/shapecraft/audio"
	"github.com/lixenwraith/shapecraft/config"
	"github.com/lixenwraith/shapecraft/core"
	"github.com/lixenwraith/shapecraft/engine"
	"github.com/lixenwraith/shapecraft/game"
	"github.com/lixenwraith/shapecraft/input"
	"github.com/lixenwraith/shapecraft/inventory"
	"github.com/lixenwraith/shapecraft/logger"
	"github.com/lixenwraith/shapecraft/render"
)

var (
	configFlag  = flag.String("config", "", "Path to a TOML config file")
	seedFlag    = flag.Int64("seed", 0, "Simulation seed, 0 picks one from the clock")
	recipesFlag = flag.Bool("recipes", false, "Print the recipe table and exit")
	muteFlag    = flag.Bool("mute", false, "Start with audio disabled")
)

func main() {
	flag.Parse()

	if *recipesFlag {
		printRecipes(os.Stdout, inventory.DefaultRecipes)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "shapecraft: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if *configFlag != "" {
		var err error
		if cfg, err = config.Load(*configFlag); err != nil {
			return nil, err
		}
	}
	if *seedFlag != 0 {
		cfg.Sim.Seed = *seedFlag
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
	return cfg, nil
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	base, closeLog, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	sim, err := game.New(cfg, base)
	if err != nil {
		return err
	}
	log := base.WithField("run", sim.RunID.String())

	keys, err := input.ParseKeymap(cfg.Keys)
	if err != nil {
		return errors.Wrap(err, "keymap")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	screen.EnableMouse()
	screen.HideCursor()
	core.RestoreFunc = screen.Fini
	defer screen.Fini()

	player := audio.NewPlayer(cfg.Audio, log.WithField("system", "audio"))
	if err := player.Init(); err != nil {
		// Non-fatal, the game runs without sound
		log.WithError(err).Warn("audio unavailable")
	}
	defer player.Close()

	term := render.NewTerminal(screen)
	ctrl := input.NewController(keys, sim, term.Camera().ScreenToWorld)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clock := engine.NewClock(cfg.Sim.TickRate, cfg.Sim.MaxCatchUp)
	simDone := make(chan error, 1)
	core.Go(func() { simDone <- clock.Run(ctx, sim.Step) })

	events := make(chan tcell.Event, 64)
	core.Go(func() { pollEvents(screen, events) })

	err = frontLoop(ctx, stop, frontEnd{
		clock:  clock,
		sim:    sim,
		term:   term,
		ctrl:   ctrl,
		player: player,
		events: events,
		done:   simDone,
		log:    log,
	})

	logMetrics(log, sim, clock)
	return err
}

type frontEnd struct {
	clock  *engine.Clock
	sim    *game.Simulation
	term   *render.Terminal
	ctrl   *input.Controller
	player *audio.Player
	events <-chan tcell.Event
	done   <-chan error
	log    *logrus.Entry
}

// frontLoop owns the controller and renderer; the simulation runs on the clock goroutine
func frontLoop(ctx context.Context, stop context.CancelFunc, fe frontEnd) error {
	frame := time.NewTicker(fe.clock.Interval)
	defer frame.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case err := <-fe.done:
			if err != nil && !errors.Is(err, context.Canceled) {
				return errors.Wrap(err, "simulation")
			}
			return nil

		case ev, ok := <-fe.events:
			if !ok {
				return nil
			}
			switch fe.ctrl.HandleEvent(ev) {
			case input.IntentQuit:
				stop()
			case input.IntentPause:
				if fe.clock.Paused() {
					fe.clock.Resume()
				} else {
					fe.clock.Pause()
				}
				fe.log.WithField("paused", fe.clock.Paused()).Info("pause toggled")
			case input.IntentMute:
				fe.player.SetMuted(!fe.player.Muted())
			case input.IntentResize:
				fe.term.Resize()
			}

		case <-frame.C:
			fe.ctrl.Tick()
			fe.player.Handle(fe.sim.Signals())
			fe.term.Draw(fe.sim.View())
		}
	}
}

// pollEvents forwards terminal events until the screen is finalized
func pollEvents(screen tcell.Screen, out chan<- tcell.Event) {
	defer close(out)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		out <- ev
	}
}

func logMetrics(log *logrus.Entry, sim *game.Simulation, clock *engine.Clock) {
	fields := logrus.Fields{"ticks": clock.TickCount(), "over": sim.Over()}
	for _, m := range sim.Metrics() {
		fields[m.Key] = m.Value
	}
	log.WithFields(fields).Info("session ended")
}
