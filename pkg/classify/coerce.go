package classify

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	decimalLiteral = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)
	hexLiteral     = regexp.MustCompile(`^0[xX][0-9a-fA-F]+$`)
	octalLiteral   = regexp.MustCompile(`^0[oO][0-7]+$`)
	binaryLiteral  = regexp.MustCompile(`^0[bB][01]+$`)
)

// IsCoercibleNumber reports whether general numeric coercion of tok yields a
// number rather than NaN. Surrounding whitespace is ignored and a blank token
// coerces to zero. Accepted forms are signed decimals with optional fraction
// and exponent, signed Infinity, and unsigned 0x/0o/0b integer literals.
func IsCoercibleNumber(tok string) bool {
	s := strings.TrimFunc(tok, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})

	switch s {
	case "":
		return true
	case "Infinity", "+Infinity", "-Infinity":
		return true
	}

	return decimalLiteral.MatchString(s) ||
		hexLiteral.MatchString(s) ||
		octalLiteral.MatchString(s) ||
		binaryLiteral.MatchString(s)
}
