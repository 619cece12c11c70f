package commands

import (
	"context"

	"github.com/pixil98/go-adventure/internal/game"
)

// quit ends the session without touching the engine.
func (h *Handler) quit(ctx context.Context, eng *game.Engine, arg string) (Response, error) {
	return Response{Text: "Goodbye!", Outcome: game.Success, End: true}, nil
}
