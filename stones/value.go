package stones

// Value is the number engraved on a stone.
type Value = uint64

// Multiplier replaces a stone whose number has an odd digit count.
const Multiplier Value = 2024

var pow10 = [...]Value{
	1,
	10,
	100,
	1_000,
	10_000,
	100_000,
	1_000_000,
	10_000_000,
	100_000_000,
	1_000_000_000,
	10_000_000_000,
	100_000_000_000,
	1_000_000_000_000,
	10_000_000_000_000,
	100_000_000_000_000,
	1_000_000_000_000_000,
	10_000_000_000_000_000,
	100_000_000_000_000_000,
	1_000_000_000_000_000_000,
	10_000_000_000_000_000_000,
}

// Digits returns the number of decimal digits of v. Zero has one digit.
func Digits(v Value) int {
	d := 1
	for v >= 10 {
		v /= 10
		d++
	}
	return d
}

// SplitDigits cuts the d-digit number v into its first and last d/2 digits.
// Leading zeros of the right half disappear: 1000 splits into 10 and 0.
func SplitDigits(v Value, d int) (left, right Value) {
	divisor := pow10[d/2]
	return v / divisor, v % divisor
}

// Blink applies one round of the rule to a single stone.
// When split is true the stone became left and right, otherwise it became left.
// The odd-digit product is not checked for overflow here; see Expander.
func Blink(v Value) (left, right Value, split bool) {
	if v == 0 {
		return 1, 0, false
	}
	if d := Digits(v); d%2 == 0 {
		left, right = SplitDigits(v, d)
		return left, right, true
	}
	return v * Multiplier, 0, false
}
