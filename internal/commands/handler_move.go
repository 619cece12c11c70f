package commands

import (
	"context"

	"github.com/pixil98/go-adventure/internal/game"
)

// move walks through an exit. A successful move shows the new room and a
// winning move ends the session with the victory banner.
func (h *Handler) move(ctx context.Context, eng *game.Engine, arg string) (Response, error) {
	res := eng.Move(arg)

	switch res.Outcome {
	case game.Success:
		text, err := h.views.room(eng.CurrentRoom())
		if err != nil {
			return Response{}, err
		}
		return Response{Text: text, Outcome: game.Success}, nil
	case game.Victory:
		h.logger.InfoContext(ctx, "victory", "room", eng.CurrentRoom().Key)
		return Response{Text: res.Message, Outcome: game.Victory, End: true}, nil
	default:
		return result(res), nil
	}
}
