package commands

import (
	"context"

	"github.com/pixil98/go-adventure/internal/game"
)

func (h *Handler) take(ctx context.Context, eng *game.Engine, arg string) (Response, error) {
	return result(eng.Take(arg)), nil
}

func (h *Handler) drop(ctx context.Context, eng *game.Engine, arg string) (Response, error) {
	return result(eng.Drop(arg)), nil
}

func (h *Handler) inspect(ctx context.Context, eng *game.Engine, arg string) (Response, error) {
	return result(eng.Inspect(arg)), nil
}
