package stones

import (
	"errors"
	"math/bits"

	"github.com/on-the-ground/stonecount/pure"
)

// ErrOverflow means a stone number or a stone count no longer fits in 64 bits.
var ErrOverflow = errors.New("stone arithmetic overflows 64 bits")

// Key identifies a subproblem: how many stones v becomes after Steps rounds.
type Key struct {
	Steps int
	Value Value
}

// Memo caches counts by Key.
type Memo = pure.Table[Key, uint64]

// NewMemo creates a memo table. maxSize 0 means unbounded.
func NewMemo(maxSize int) *Memo {
	return pure.NewTable[Key, uint64](maxSize)
}

// Expander counts stones without materializing them.
//
// The count for a Key depends on nothing else, so one memo can be shared by
// every starting stone (and every budget) of a run.
type Expander struct {
	memo *Memo
	err  error
}

func NewExpander(memo *Memo) *Expander {
	return &Expander{memo: memo}
}

// Count returns the number of stones v turns into after steps rounds.
// If the arithmetic overflows, the returned count is meaningless and Err
// reports ErrOverflow.
func (e *Expander) Count(steps int, v Value) uint64 {
	if steps <= 0 {
		return 1
	}

	key := Key{Steps: steps, Value: v}
	if cached, ok := e.memo.Load(key); ok {
		return cached
	}

	steps--
	var result uint64

	if v == 0 {
		result = e.Count(steps, 1)
	} else if d := Digits(v); d%2 == 0 {
		left, right := SplitDigits(v, d)
		result = e.add(e.Count(steps, left), e.Count(steps, right))
	} else {
		hi, product := bits.Mul64(v, Multiplier)
		if hi != 0 {
			e.err = ErrOverflow
		}
		result = e.Count(steps, product)
	}

	// A wrapped count must not reach a memo other expanders may share.
	if e.err == nil {
		e.memo.Store(key, result)
	}
	return result
}

// Err returns the first error met while counting, if any.
func (e *Expander) Err() error {
	return e.err
}

// Memo returns the table the expander records results in.
func (e *Expander) Memo() *Memo {
	return e.memo
}

func (e *Expander) add(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		e.err = ErrOverflow
	}
	return sum
}

// Count is the functional form of Expander.Count. It does not report
// overflow; use an Expander when that matters.
func Count(steps int, v Value, memo *Memo) uint64 {
	return NewExpander(memo).Count(steps, v)
}
