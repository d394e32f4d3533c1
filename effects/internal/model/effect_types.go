package effectmodel

import "errors"

type EffectEnum string

const (
	EffectLog EffectEnum = "stonecount_effect_enum_log"
)

var ErrNoEffectHandler = errors.New("no effect handler registered for this effect")
