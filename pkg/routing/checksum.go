package routing

import "fmt"

// checkWeights are applied to the eight significant digits in order:
// symbol d1..d4 then institution d5..d8.
var checkWeights = [8]int{3, 7, 1, 3, 7, 1, 3, 7}

// ComputeCheckDigit returns the check digit for a four digit routing symbol
// and a four digit institution identifier.
//
// The digit is 10 minus the weighted sum modulo 10, with 10 wrapping to 0,
// so the weighted sum over all nine digits is always a multiple of ten.
func ComputeCheckDigit(symbol, institution string) (int, error) {
	if len(symbol) != 4 || len(institution) != 4 {
		return 0, fmt.Errorf("%w: symbol and institution must be 4 digits each", ErrInvalidFormat)
	}
	digits := symbol + institution
	sum := 0
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if !isDigit(c) {
			return 0, fmt.Errorf("%w: non-digit %q at position %d", ErrInvalidFormat, c, i+1)
		}
		sum += checkWeights[i] * int(c-'0')
	}
	return (10 - sum%10) % 10, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
