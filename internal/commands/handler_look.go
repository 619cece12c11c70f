package commands

import (
	"context"

	"github.com/pixil98/go-adventure/internal/game"
)

// examine describes the current room: its description, exits and items.
func (h *Handler) examine(ctx context.Context, eng *game.Engine, arg string) (Response, error) {
	text, err := h.views.room(eng.CurrentRoom())
	if err != nil {
		return Response{}, err
	}
	return Response{Text: text, Outcome: game.Success}, nil
}
