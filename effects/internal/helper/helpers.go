package helper

import (
	"context"
	"fmt"

	effectmodel "github.com/on-the-ground/stonecount/effects/internal/model"
)

// GetHandler looks up the handler registered in ctx for enum and asserts it to H.
// It fails with ErrNoEffectHandler when nothing is registered.
func GetHandler[H any](ctx context.Context, enum effectmodel.EffectEnum) (H, error) {
	var zero H

	raw := ctx.Value(enum)
	if raw == nil {
		return zero, fmt.Errorf("%w: %v", effectmodel.ErrNoEffectHandler, enum)
	}

	handler, ok := raw.(H)
	if !ok {
		return zero, fmt.Errorf("unexpected handler type for %v: %T", enum, raw)
	}
	return handler, nil
}

// MustGetHandler is the panic-on-failure variant of GetHandler.
// Use it where a missing handler is a wiring bug.
func MustGetHandler[H any](ctx context.Context, enum effectmodel.EffectEnum) H {
	handler, err := GetHandler[H](ctx, enum)
	if err != nil {
		panic(err)
	}
	return handler
}
