package stones_test

import (
	"math"
	"testing"

	"github.com/on-the-ground/stonecount/stones"
	"github.com/stretchr/testify/assert"
)

func TestDigits_PowersOfTen(t *testing.T) {
	assert.Equal(t, 1, stones.Digits(0))
	assert.Equal(t, 1, stones.Digits(1))

	p := uint64(1)
	for d := 1; d < 20; d++ {
		p *= 10
		assert.Equal(t, d+1, stones.Digits(p), "10^%d", d)
		assert.Equal(t, d, stones.Digits(p-1), "10^%d-1", d)
	}
	assert.Equal(t, 20, stones.Digits(math.MaxUint64))
}

func TestSplitDigits(t *testing.T) {
	tests := []struct {
		v           uint64
		left, right uint64
	}{
		{10, 1, 0},
		{99, 9, 9},
		{1000, 10, 0},
		{2024, 20, 24},
		{253000, 253, 0},
		{10000001, 1000, 1},
		{math.MaxUint64, 1844674407, 3709551615},
	}
	for _, tt := range tests {
		left, right := stones.SplitDigits(tt.v, stones.Digits(tt.v))
		assert.Equal(t, tt.left, left, "left of %d", tt.v)
		assert.Equal(t, tt.right, right, "right of %d", tt.v)
	}
}

func TestBlink(t *testing.T) {
	left, _, split := stones.Blink(0)
	assert.False(t, split)
	assert.Equal(t, uint64(1), left)

	left, _, split = stones.Blink(1)
	assert.False(t, split)
	assert.Equal(t, uint64(2024), left)

	left, right, split := stones.Blink(1000)
	assert.True(t, split)
	assert.Equal(t, uint64(10), left)
	assert.Equal(t, uint64(0), right)

	left, _, split = stones.Blink(125)
	assert.False(t, split)
	assert.Equal(t, uint64(253000), left)
}

func TestBlink_OneRoundOfExample(t *testing.T) {
	// 0 1 10 99 999 -> 1 2024 1 0 9 9 2021976
	assert.Equal(t,
		[]uint64{1, 2024, 1, 0, 9, 9, 2021976},
		expandNaive([]uint64{0, 1, 10, 99, 999}, 1),
	)
}

// expandNaive materializes the sequence; only usable for a few rounds.
func expandNaive(seq []uint64, rounds int) []uint64 {
	for ; rounds > 0; rounds-- {
		next := make([]uint64, 0, 2*len(seq))
		for _, v := range seq {
			left, right, split := stones.Blink(v)
			next = append(next, left)
			if split {
				next = append(next, right)
			}
		}
		seq = next
	}
	return seq
}
