package commands

import (
	"context"

	"github.com/pixil98/go-adventure/internal/game"
)

// inventory lists the items the player carries.
func (h *Handler) inventory(ctx context.Context, eng *game.Engine, arg string) (Response, error) {
	text, err := h.views.inventory(eng.Player().Inventory())
	if err != nil {
		return Response{}, err
	}
	return Response{Text: text, Outcome: game.Success}, nil
}
