package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pixil98/go-adventure/internal/display"
	"github.com/pixil98/go-adventure/internal/game"
)

// Response is what a command hands back to the session loop.
type Response struct {
	Text    string
	Outcome game.Outcome
	// End asks the session to stop once Text has been shown.
	End bool
}

// CommandFunc runs one verb against a session's engine.
type CommandFunc func(ctx context.Context, eng *game.Engine, arg string) (Response, error)

// Recorder observes every executed command.
type Recorder interface {
	ObserveCommand(verb string, outcome game.Outcome)
}

// unknownVerb labels input that matched no registered command.
const unknownVerb = "unknown"

type Handler struct {
	commands map[string]CommandFunc
	views    *views
	recorder Recorder
	logger   *slog.Logger
	debug    bool
}

type HandlerOpt func(*Handler)

// WithDebug enables the teleport command.
func WithDebug() HandlerOpt {
	return func(h *Handler) {
		h.debug = true
	}
}

func WithRecorder(r Recorder) HandlerOpt {
	return func(h *Handler) {
		h.recorder = r
	}
}

func WithLogger(l *slog.Logger) HandlerOpt {
	return func(h *Handler) {
		h.logger = l
	}
}

// NewHandler builds a handler with the built-in verbs registered.
func NewHandler(opts ...HandlerOpt) (*Handler, error) {
	v, err := newViews()
	if err != nil {
		return nil, fmt.Errorf("compiling views: %w", err)
	}

	h := &Handler{
		commands: make(map[string]CommandFunc),
		views:    v,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}

	builtins := map[string]CommandFunc{
		"go":        h.move,
		"take":      h.take,
		"drop":      h.drop,
		"inspect":   h.inspect,
		"buy":       h.buy,
		"sell":      h.sell,
		"money":     h.money,
		"examine":   h.examine,
		"inventory": h.inventory,
		"exit":      h.quit,
		"quit":      h.quit,
	}
	if h.debug {
		builtins["teleport"] = h.teleport
	}

	for name, fn := range builtins {
		if err := h.Register(name, fn); err != nil {
			return nil, err
		}
	}

	return h, nil
}

// Register adds a command under the given verb.
func (h *Handler) Register(name string, fn CommandFunc) error {
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if fn == nil {
		return fmt.Errorf("command %q cannot be nil", name)
	}
	if _, exists := h.commands[name]; exists {
		return fmt.Errorf("command %q already registered", name)
	}
	h.commands[name] = fn
	return nil
}

// Exec parses one line of input and runs the matching command. Empty input
// yields an empty Response. The returned error is reserved for failures
// outside the game, such as a broken template.
func (h *Handler) Exec(ctx context.Context, eng *game.Engine, line string) (Response, error) {
	verb, arg := Parse(line)
	if verb == "" {
		return Response{}, nil
	}

	fn, ok := h.commands[verb]
	if !ok {
		h.observe(unknownVerb, game.Failure)
		return Response{
			Text:    fmt.Sprintf(`I don't quite understand "%s"!`, Normalize(line)),
			Outcome: game.Failure,
		}, nil
	}

	resp, err := fn(ctx, eng, arg)
	if err != nil {
		return Response{}, fmt.Errorf("executing %s: %w", verb, err)
	}

	h.logger.DebugContext(ctx, "command executed", "verb", verb, "arg", arg, "outcome", resp.Outcome.String())
	h.observe(verb, resp.Outcome)

	return resp, nil
}

// Intro renders the text shown when a session starts: the initialization
// banner followed by the starting room.
func (h *Handler) Intro(eng *game.Engine) (string, error) {
	room, err := h.views.room(eng.CurrentRoom())
	if err != nil {
		return "", err
	}
	return display.Paragraphs(eng.Configuration().InitializationText, room), nil
}

func (h *Handler) observe(verb string, outcome game.Outcome) {
	if h.recorder != nil {
		h.recorder.ObserveCommand(verb, outcome)
	}
}

// result turns an engine Result into a Response.
func result(res game.Result) Response {
	return Response{Text: res.Message, Outcome: res.Outcome}
}
