package commands

import (
	"context"
	"fmt"

	"github.com/pixil98/go-adventure/internal/game"
)

// teleport jumps straight to a room by key. It is only registered when
// debugging is enabled.
func (h *Handler) teleport(ctx context.Context, eng *game.Engine, arg string) (Response, error) {
	if err := eng.Teleport(arg); err != nil {
		return Response{Text: fmt.Sprintf(`There is no room "%s"!`, arg), Outcome: game.Failure}, nil
	}

	h.logger.DebugContext(ctx, "teleported", "room", arg)

	text, err := h.views.room(eng.CurrentRoom())
	if err != nil {
		return Response{}, err
	}
	return Response{Text: text, Outcome: game.Success}, nil
}
