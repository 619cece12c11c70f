package command

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pixil98/go-adventure/internal/commands"
	"github.com/pixil98/go-adventure/internal/console"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/logger"
	"github.com/pixil98/go-adventure/internal/metrics"
	"github.com/pixil98/go-adventure/internal/tui"
	"github.com/pixil98/go-service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	// Console output owns stdout, so logs go to stderr
	l, err := logger.Setup(cfg.logLevel(), cfg.LogFormat, os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("setting up logger: %w", err)
	}

	world, gameCfg, err := cfg.World.Load()
	if err != nil {
		return nil, fmt.Errorf("loading world: %w", err)
	}
	l.Info("world loaded", "path", cfg.World.path(), "rooms", len(world.Keys()), "starting_room", gameCfg.StartingRoom)

	eng, err := game.NewEngine(world, gameCfg)
	if err != nil {
		return nil, fmt.Errorf("creating engine: %w", err)
	}

	opts := []commands.HandlerOpt{commands.WithLogger(l)}
	if cfg.Interface.Debug {
		opts = append(opts, commands.WithDebug())
	}

	var m *metrics.Metrics
	if cfg.Metrics.enabled() {
		m = metrics.New()
		opts = append(opts, commands.WithRecorder(m))
	}

	handler, err := commands.NewHandler(opts...)
	if err != nil {
		return nil, fmt.Errorf("creating command handler: %w", err)
	}

	done := make(chan struct{})
	workers := service.WorkerList{
		"session": &sessionWorker{
			iface:   cfg.Interface,
			engine:  eng,
			handler: handler,
			conn:    stdio{Reader: os.Stdin, Writer: os.Stdout},
			logger:  l,
			done:    done,
		},
	}
	if m != nil {
		workers["metrics"] = cfg.Metrics.BuildServer(m, done)
	}

	return workers, nil
}

// stdio joins the process's standard streams into one connection.
type stdio struct {
	io.Reader
	io.Writer
}

// sessionWorker plays a single game session and closes done when it ends.
type sessionWorker struct {
	iface   InterfaceConfig
	engine  *game.Engine
	handler *commands.Handler
	conn    io.ReadWriter
	logger  *slog.Logger
	done    chan struct{}
}

func (w *sessionWorker) Start(ctx context.Context) error {
	defer close(w.done)

	switch w.iface.Type {
	case InterfaceTypeConsole:
		c := console.New(w.conn, w.engine, w.handler,
			console.WithWidth(w.iface.width()),
			console.WithLogger(w.logger),
		)
		return c.Play(ctx)
	case InterfaceTypeTUI:
		return tui.Run(ctx, w.engine, w.handler)
	default:
		return fmt.Errorf("unknown interface type: %v", w.iface.Type)
	}
}
