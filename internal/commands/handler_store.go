package commands

import (
	"context"

	"github.com/pixil98/go-adventure/internal/game"
)

func (h *Handler) buy(ctx context.Context, eng *game.Engine, arg string) (Response, error) {
	return result(eng.Buy(arg)), nil
}

func (h *Handler) sell(ctx context.Context, eng *game.Engine, arg string) (Response, error) {
	return result(eng.Sell(arg)), nil
}

func (h *Handler) money(ctx context.Context, eng *game.Engine, arg string) (Response, error) {
	return result(eng.CheckMoney()), nil
}
