package blink

import (
	"context"
	"fmt"
	"math/bits"

	"github.com/google/uuid"
	"github.com/on-the-ground/stonecount/effects"
	"github.com/on-the-ground/stonecount/effects/log"
	"github.com/on-the-ground/stonecount/pure"
	"github.com/on-the-ground/stonecount/stones"
)

// Result is the stone count for one budget.
type Result struct {
	RunID  string
	Budget int
	Total  uint64
	// Memo describes the table used for this budget. With a shared memo the
	// figures accumulate over the budgets evaluated so far.
	Memo pure.Stats
	Span effects.TimeSpan
}

// Runner evaluates every configured budget over a stone sequence.
// It logs through the log effect, so ctx must carry a log handler.
type Runner struct {
	cfg Config
}

func NewRunner(cfg Config) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Runner{cfg: cfg}, nil
}

// Run returns one Result per budget, in configuration order.
// Any error aborts the whole run; no partial results are returned.
func (r *Runner) Run(ctx context.Context, values []stones.Value) ([]Result, error) {
	runID := uuid.New().String()
	log.Effect(ctx, log.LogDebug, "run started", map[string]interface{}{
		"run_id":      runID,
		"stones":      len(values),
		"fingerprint": fmt.Sprintf("%016x", stones.Fingerprint(values)),
		"budgets":     r.cfg.Budgets,
		"share_memo":  r.cfg.ShareMemo,
		"memo_limit":  r.cfg.MemoLimit,
	})

	var shared *stones.Memo
	if r.cfg.ShareMemo {
		shared = stones.NewMemo(r.cfg.MemoLimit)
	}

	results := make([]Result, 0, len(r.cfg.Budgets))
	for _, budget := range r.cfg.Budgets {
		memo := shared
		if memo == nil {
			memo = stones.NewMemo(r.cfg.MemoLimit)
		}

		res, err := evaluate(ctx, budget, values, memo)
		if err != nil {
			return nil, fmt.Errorf("run %s: %w", runID, err)
		}
		res.RunID = runID

		log.Effect(ctx, log.LogDebug, "budget evaluated", map[string]interface{}{
			"run_id":       runID,
			"budget":       budget,
			"total":        res.Total,
			"memo_entries": res.Memo.Entries,
			"memo_hits":    res.Memo.Hits,
			"memo_misses":  res.Memo.Misses,
			"memo_dropped": res.Memo.Dropped,
			"duration":     res.Span.Duration(),
		})
		results = append(results, res)
	}
	return results, nil
}

// evaluate sums the counts of every starting stone after budget rounds.
func evaluate(ctx context.Context, budget int, values []stones.Value, memo *stones.Memo) (Result, error) {
	stop := effects.Stopwatch()
	expander := stones.NewExpander(memo)

	var total uint64
	for _, v := range values {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		var carry uint64
		total, carry = bits.Add64(total, expander.Count(budget, v), 0)
		if carry != 0 {
			return Result{}, fmt.Errorf("budget %d: total: %w", budget, stones.ErrOverflow)
		}
	}
	if err := expander.Err(); err != nil {
		return Result{}, fmt.Errorf("budget %d: %w", budget, err)
	}

	return Result{
		Budget: budget,
		Total:  total,
		Memo:   memo.Stats(),
		Span:   stop(),
	}, nil
}
