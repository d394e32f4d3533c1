// Package effects holds the side-effect plumbing shared by stonecount.
//
// Counting stones is pure: the same (steps, value) pair always yields the
// same count. Everything that is not pure, such as logging and wall-clock
// timing, is kept out of the counting code and lives here.
//
// Handlers are registered in a context.Context and retrieved by an effect
// enum; see the log subpackage:
//
//	ctx, endOfLog := log.WithZapEffectHandler(ctx, logger)
//	defer endOfLog()
//
//	log.Effect(ctx, log.LogInfo, "budget evaluated", map[string]interface{}{"total": total})
package effects
