package blink

import (
	"errors"
	"fmt"
)

var ErrInvalidBudget = errors.New("invalid blink budget")

// DefaultBudgets are the round counts reported when nothing else is asked for.
var DefaultBudgets = []int{25, 75}

type Config struct {
	// Budgets are evaluated in order, one total each.
	Budgets []int
	// ShareMemo reuses one memo table across all budgets instead of a fresh one per budget.
	ShareMemo bool
	// MemoLimit caps the number of memo entries per table. 0 means unbounded.
	MemoLimit int
}

func DefaultConfig() Config {
	return Config{
		Budgets: append([]int(nil), DefaultBudgets...),
	}
}

func (c Config) Validate() error {
	for i, b := range c.Budgets {
		if b < 0 {
			return fmt.Errorf("%w: budget %d is %d", ErrInvalidBudget, i, b)
		}
	}
	if c.MemoLimit < 0 {
		return fmt.Errorf("memo limit should not be negative: %d", c.MemoLimit)
	}
	return nil
}
