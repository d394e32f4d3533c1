package effects_test

import (
	"testing"
	"time"

	"github.com/on-the-ground/stonecount/effects"
	"github.com/stretchr/testify/assert"
)

func TestNewTimeSpan(t *testing.T) {
	from := time.Date(2024, 12, 11, 6, 0, 0, 0, time.UTC)
	span := effects.NewTimeSpan(from, from.Add(3*time.Second))

	assert.Equal(t, 3*time.Second, span.Duration())
	assert.True(t, span.Start().Equal(from))
}

func TestStopwatch(t *testing.T) {
	stop := effects.Stopwatch()
	span := stop()

	assert.GreaterOrEqual(t, span.Duration(), time.Duration(0))
	assert.False(t, span.Start().After(time.Now()))
}
