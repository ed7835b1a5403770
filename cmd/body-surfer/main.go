// Command body-surfer runs the endless runner in the terminal, steered by a pose feed or the keyboard
package main

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/body-surfer/audio"
	"github.com/lixenwraith/body-surfer/config"
	"github.com/lixenwraith/body-surfer/constants"
	"github.com/lixenwraith/body-surfer/core"
	"github.com/lixenwraith/body-surfer/engine"
	"github.com/lixenwraith/body-surfer/events"
	"github.com/lixenwraith/body-surfer/input"
	"github.com/lixenwraith/body-surfer/logging"
	"github.com/lixenwraith/body-surfer/pose"
	"github.com/lixenwraith/body-surfer/render"
	"github.com/lixenwraith/body-surfer/signal"
	"github.com/lixenwraith/body-surfer/status"
)

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "body-surfer: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	opts.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	table := input.DefaultKeyTable()
	if err := table.Apply(cfg.Input.Bindings); err != nil {
		return fmt.Errorf("key bindings: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	core.SetCrashTerminal(screen)
	defer screen.Fini()
	// Runs before Fini above; HandleCrash finalizes the screen itself
	defer core.Recover()

	metrics := status.NewRegistry()
	a := newApp(cfg, screen, table, logger, metrics)
	defer a.sound.Cleanup()

	if cfg.Audio.Enabled {
		if err := a.sound.Initialize(); err != nil {
			logger.Warn("audio unavailable, continuing silent", zap.Error(err))
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	defer func() {
		cancel()
		wg.Wait()
	}()
	a.startWorkers(ctx, &wg)

	evCh := make(chan tcell.Event, 64)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case evCh <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	logger.Info("started", zap.Int("fps", cfg.Render.FPS), zap.Bool("pose", cfg.Pose.Enabled))
	ticker := time.NewTicker(cfg.FrameInterval())
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev := <-evCh:
			if !a.handleEvent(ev) {
				logger.Info("quit", zap.Int("runs", a.session.Run()))
				return nil
			}
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			a.frame(dt)
		}
	}
}

// app wires the session to its inputs and outputs, everything here runs on the main goroutine
// except the workers started by startWorkers
type app struct {
	cfg     config.Config
	logger  *zap.Logger
	metrics *status.Registry

	session  *engine.Session
	router   *events.Router[*engine.Session]
	renderer *render.Renderer
	screen   tcell.Screen
	sound    *audio.SoundManager

	machine    *input.Machine
	keyboard   *input.Keyboard
	classifier *pose.Classifier
	poseSlot   *signal.Slot // nil when pose input is disabled
	keySlot    *signal.Slot
	reader     signal.Fallback
}

func newApp(cfg config.Config, screen tcell.Screen, table *input.KeyTable, logger *zap.Logger, metrics *status.Registry) *app {
	session := engine.NewSession(cfg.Tuning(), logger, metrics)
	hud := render.NewHUD()
	renderer := render.NewRenderer(screen, hud, cfg.Game.LaneWidth, metrics, cfg.Render.ShowMetrics)
	sound := audio.NewSoundManager(cfg.SoundConfig())

	router := events.NewRouter[*engine.Session](session.Events())
	router.Register(hud)
	router.Register(renderer)
	router.Register(audio.NewCueHandler[*engine.Session](sound))

	a := &app{
		cfg:      cfg,
		logger:   logger,
		metrics:  metrics,
		session:  session,
		router:   router,
		renderer: renderer,
		screen:   screen,
		sound:    sound,
		machine:  input.NewMachine(table),
		keySlot:  signal.NewSlot("keyboard"),
	}
	a.keyboard = input.NewKeyboard(a.keySlot, cfg.Input.KeyHold, constants.SourcePollInterval)

	if cfg.Pose.Enabled {
		a.poseSlot = signal.NewSlot("pose")
		a.classifier = pose.NewClassifier(cfg.Thresholds())
	}
	a.reader = signal.Fallback{Primary: a.poseSlot, Secondary: a.keySlot}
	return a
}

// startWorkers launches the signal producers, each the only writer of its slot
func (a *app) startWorkers(ctx context.Context, wg *sync.WaitGroup) {
	type worker interface {
		Run(context.Context) error
	}
	workers := map[string]worker{"keyboard": a.keyboard}

	if a.poseSlot != nil {
		p := a.cfg.Pose
		if p.Replay != "" {
			workers["pose replay"] = pose.NewReplay(p.Replay, p.ReplayInterval, p.ReplayLoop, a.poseSlot, a.classifier, a.logger, a.metrics)
		} else {
			workers["pose feed"] = pose.NewFeed(a.cfg.FeedConfig(), a.poseSlot, a.classifier, a.logger, a.metrics)
		}
	}

	for name, w := range workers {
		wg.Add(1)
		core.Go(func() {
			defer wg.Done()
			if err := w.Run(ctx); err != nil {
				a.logger.Warn("worker stopped", zap.String("worker", name), zap.Error(err))
			}
		})
	}
}

// handleEvent applies one terminal event, false means quit
func (a *app) handleEvent(ev tcell.Event) bool {
	in := a.machine.Process(ev)
	switch in.Type {
	case input.IntentNone:
	case input.IntentQuit:
		return false
	case input.IntentResize:
		a.screen.Sync()
	case input.IntentStart:
		a.session.Start()
	case input.IntentMouseClick:
		if a.renderer.ButtonAt(in.X, in.Y) {
			a.session.Start()
		}
	case input.IntentRecalibrate:
		if a.classifier != nil {
			a.classifier.Recalibrate()
			a.logger.Info("pose recalibration requested")
		}
	case input.IntentToggleMute:
		muted := a.sound.ToggleMute()
		a.logger.Debug("mute toggled", zap.Bool("muted", muted))
	case input.IntentToggleDebug:
		a.renderer.ToggleDebug()
	default:
		if in.Type.Control() {
			a.keyboard.Submit(in.Type)
		}
	}
	return true
}

// frame advances the simulation by dt, dispatches its events and draws
func (a *app) frame(dt float64) {
	a.session.Update(dt, a.reader)
	a.router.DispatchAll(a.session)
	a.renderer.Render(a.session.Snapshot(), render.Sources{
		Pose:   a.poseSlot,
		Active: a.reader.Active(),
		Muted:  a.sound.IsMuted(),
	})
}
