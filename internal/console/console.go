package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pixil98/go-adventure/internal/commands"
	"github.com/pixil98/go-adventure/internal/display"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/logger"
)

const prompt = "> "

// Console runs one game session over a line-oriented stream such as a
// terminal.
type Console struct {
	conn    io.ReadWriter
	id      uuid.UUID
	engine  *game.Engine
	handler *commands.Handler
	width   int
	logger  *slog.Logger
}

type Opt func(*Console)

// WithWidth sets the column at which output wraps.
func WithWidth(width int) Opt {
	return func(c *Console) {
		c.width = width
	}
}

func WithLogger(l *slog.Logger) Opt {
	return func(c *Console) {
		c.logger = l
	}
}

func New(conn io.ReadWriter, eng *game.Engine, h *commands.Handler, opts ...Opt) *Console {
	c := &Console{
		conn:    conn,
		id:      uuid.New(),
		engine:  eng,
		handler: h,
		width:   display.DefaultWidth,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = logger.WithSession(c.logger, c.id.String())
	return c
}

// Id returns the session's unique identifier.
func (c *Console) Id() uuid.UUID {
	return c.id
}

// Play runs the session until the player quits or wins, input ends, or ctx
// is cancelled.
func (c *Console) Play(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	// Start goroutine to read input lines into a channel
	inputChan := make(chan string)
	inputErrChan := make(chan error, 1)
	go func() {
		defer close(inputChan)
		scanner := bufio.NewScanner(c.conn)
		for scanner.Scan() {
			select {
			case inputChan <- scanner.Text():
			case <-done:
				return
			}
		}
		inputErrChan <- scanner.Err()
	}()

	c.logger.InfoContext(ctx, "session started", "room", c.engine.CurrentRoom().Key)

	intro, err := c.handler.Intro(c.engine)
	if err != nil {
		return fmt.Errorf("rendering intro: %w", err)
	}
	if err := c.writeLine(intro); err != nil {
		return err
	}
	if err := c.prompt(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case line, ok := <-inputChan:
			if !ok {
				c.logger.InfoContext(ctx, "session ended", "reason", "end of input")
				select {
				case err := <-inputErrChan:
					return err
				default:
					return nil
				}
			}

			resp, err := c.handler.Exec(ctx, c.engine, line)
			if err != nil {
				return fmt.Errorf("command execution failed: %w", err)
			}

			if resp.Text != "" {
				if err := c.writeLine(resp.Text); err != nil {
					return err
				}
			}

			if resp.End {
				c.logger.InfoContext(ctx, "session ended", "reason", resp.Outcome.String(), "room", c.engine.CurrentRoom().Key)
				return nil
			}

			if err := c.prompt(); err != nil {
				return err
			}
		}
	}
}

func (c *Console) prompt() error {
	_, err := io.WriteString(c.conn, prompt)
	return err
}

func (c *Console) writeLine(msg string) error {
	_, err := io.WriteString(c.conn, display.Wrap(msg, c.width)+"\n\n")
	return err
}
