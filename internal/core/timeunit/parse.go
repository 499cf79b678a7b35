// Package timeunit parses compound durations such as "1h30m" or "90".
package timeunit

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrInvalidDuration indicates the text is not a valid compound duration.
var ErrInvalidDuration = errors.New("invalid duration")

// Parse converts text to seconds. The text is a sequence of <number><unit>
// tokens where unit is one of s, m, h; the last token may omit the unit.
func Parse(text string) (float64, error) {
	if text == "" {
		return 0, fmt.Errorf("%w: empty duration", ErrInvalidDuration)
	}

	var total float64
	rest := text
	for rest != "" {
		n := numberPrefix(rest)
		if n == 0 {
			return 0, fmt.Errorf("%w: `%s` is not a number", ErrInvalidDuration, rest)
		}
		value, err := strconv.ParseFloat(rest[:n], 64)
		if err != nil {
			return 0, fmt.Errorf("%w: `%s` is not a number", ErrInvalidDuration, rest[:n])
		}
		rest = rest[n:]

		multiplier := 1.0
		if rest != "" {
			switch rest[0] {
			case 's':
			case 'm':
				multiplier = 60
			case 'h':
				multiplier = 60 * 60
			default:
				return 0, fmt.Errorf("%w: `%c` is an unknown time unit", ErrInvalidDuration, rest[0])
			}
			rest = rest[1:]
		}
		total += value * multiplier
	}

	if math.IsInf(total, 0) || math.IsNaN(total) {
		return 0, fmt.Errorf("%w: `%s` is too large", ErrInvalidDuration, text)
	}
	if total < 0 {
		return 0, fmt.Errorf("%w: `%s` is negative", ErrInvalidDuration, text)
	}
	return total, nil
}

// numberPrefix returns the length of the longest prefix of text that looks
// like a decimal float literal: [+-]digits[.digits][(e|E)[+-]digits].
func numberPrefix(text string) int {
	i := 0
	if i < len(text) && (text[i] == '+' || text[i] == '-') {
		i++
	}

	mantissa := 0
	for i < len(text) && isDigit(text[i]) {
		i++
		mantissa++
	}
	if i < len(text) && text[i] == '.' {
		i++
		for i < len(text) && isDigit(text[i]) {
			i++
			mantissa++
		}
	}
	if mantissa == 0 {
		return 0
	}

	if i < len(text) && (text[i] == 'e' || text[i] == 'E') {
		j := i + 1
		if j < len(text) && (text[j] == '+' || text[j] == '-') {
			j++
		}
		digits := 0
		for j < len(text) && isDigit(text[j]) {
			j++
			digits++
		}
		if digits > 0 {
			i = j
		}
	}
	return i
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
