package stones

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/multierr"
)

var ErrMalformedStone = errors.New("malformed stone")

// ParseLine reads the whitespace separated stone numbers of line.
// Every token that is not a non-negative base-10 integer is reported;
// the returned error wraps ErrMalformedStone once per bad token.
func ParseLine(line string) ([]Value, error) {
	fields := strings.Fields(strings.TrimSpace(line))
	values := make([]Value, 0, len(fields))

	var err error
	for i, field := range fields {
		v, parseErr := strconv.ParseUint(field, 10, 64)
		if parseErr != nil {
			err = multierr.Append(err, fmt.Errorf("%w: token %d %q: %w", ErrMalformedStone, i, field, parseErr))
			continue
		}
		values = append(values, v)
	}
	if err != nil {
		return nil, err
	}
	return values, nil
}

// Fingerprint digests a stone sequence so runs over the same input can be
// correlated in logs.
func Fingerprint(values []Value) uint64 {
	d := xxhash.New()
	var buf []byte
	for _, v := range values {
		buf = strconv.AppendUint(buf[:0], v, 10)
		buf = append(buf, ' ')
		_, _ = d.Write(buf)
	}
	return d.Sum64()
}
