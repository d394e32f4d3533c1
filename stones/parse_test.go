package stones_test

import (
	"testing"

	"github.com/on-the-ground/stonecount/stones"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestParseLine(t *testing.T) {
	values, err := stones.ParseLine("125 17")
	require.NoError(t, err)
	assert.Equal(t, []uint64{125, 17}, values)

	values, err = stones.ParseLine("  0 1\t10   99 999 \n")
	require.NoError(t, err)
	assert.Equal(t, []uint64{0, 1, 10, 99, 999}, values)

	values, err = stones.ParseLine("\n")
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestParseLine_ReportsEveryBadToken(t *testing.T) {
	values, err := stones.ParseLine("1 x -3 4 18446744073709551616")
	assert.Nil(t, values)
	require.ErrorIs(t, err, stones.ErrMalformedStone)

	errs := multierr.Errors(err)
	require.Len(t, errs, 3)
	assert.Contains(t, errs[0].Error(), `"x"`)
	assert.Contains(t, errs[1].Error(), `"-3"`)
	assert.Contains(t, errs[2].Error(), "token 4")
}

func TestFingerprint(t *testing.T) {
	assert.Equal(t,
		stones.Fingerprint([]uint64{125, 17}),
		stones.Fingerprint([]uint64{125, 17}),
	)
	assert.NotEqual(t,
		stones.Fingerprint([]uint64{125, 17}),
		stones.Fingerprint([]uint64{17, 125}),
	)
	assert.NotEqual(t,
		stones.Fingerprint([]uint64{1, 23}),
		stones.Fingerprint([]uint64{12, 3}),
	)
}
