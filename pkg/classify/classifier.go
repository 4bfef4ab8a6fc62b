package classify

import (
	"fmt"
	"strings"
)

// NumericPolicy selects the rule used to decide whether a token is numeric.
type NumericPolicy string

const (
	// PolicyStrict accepts only tokens made of one or more ASCII digits.
	PolicyStrict NumericPolicy = "strict"

	// PolicyCoercive accepts any token that general numeric coercion turns
	// into a number (see IsCoercibleNumber).
	PolicyCoercive NumericPolicy = "coercive"
)

// ParsePolicy parses a policy name. The empty string selects PolicyStrict.
func ParsePolicy(name string) (NumericPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", string(PolicyStrict):
		return PolicyStrict, nil
	case string(PolicyCoercive):
		return PolicyCoercive, nil
	default:
		return "", fmt.Errorf("unknown numeric policy %q (want %q or %q)", name, PolicyStrict, PolicyCoercive)
	}
}

// Result is the outcome of classifying one token list.
// Numbers and Alphabets keep input order and are never nil.
type Result struct {
	// Numbers holds the tokens accepted by the numeric predicate.
	Numbers []string

	// Alphabets holds the single-letter tokens.
	Alphabets []string

	// HighestAlphabet is the case-insensitively greatest entry of Alphabets,
	// or "" when Alphabets is empty.
	HighestAlphabet string
}

// HasHighestAlphabet reports whether a highest alphabetic token exists.
func (r Result) HasHighestAlphabet() bool {
	return len(r.Alphabets) > 0
}

// Unmatched returns how many input tokens matched neither predicate.
func (r Result) Unmatched(total int) int {
	n := total - len(r.Numbers) - len(r.Alphabets)
	if n < 0 {
		return 0
	}
	return n
}

// Classifier classifies token lists under a fixed numeric policy.
// A Classifier has no mutable state and is safe for concurrent use.
type Classifier struct {
	policy    NumericPolicy
	isNumeric func(string) bool
}

// New creates a classifier for the given policy.
func New(policy NumericPolicy) (*Classifier, error) {
	switch policy {
	case PolicyStrict, "":
		return &Classifier{policy: PolicyStrict, isNumeric: IsNumeric}, nil
	case PolicyCoercive:
		return &Classifier{policy: PolicyCoercive, isNumeric: IsCoercibleNumber}, nil
	default:
		return nil, fmt.Errorf("unknown numeric policy %q", policy)
	}
}

// Default returns a classifier using PolicyStrict.
func Default() *Classifier {
	return &Classifier{policy: PolicyStrict, isNumeric: IsNumeric}
}

// Policy returns the numeric policy in effect.
func (c *Classifier) Policy() NumericPolicy {
	return c.policy
}

// Classify partitions tokens into numbers and single-letter alphabets and
// computes the highest alphabet.
func (c *Classifier) Classify(tokens []string) Result {
	res := Result{
		Numbers:   make([]string, 0, len(tokens)),
		Alphabets: make([]string, 0, len(tokens)),
	}

	for _, tok := range tokens {
		if c.isNumeric(tok) {
			res.Numbers = append(res.Numbers, tok)
		}
		if IsAlphabet(tok) {
			res.Alphabets = append(res.Alphabets, tok)
		}
	}
	res.HighestAlphabet, _ = HighestAlphabet(res.Alphabets)

	return res
}

// Classify classifies tokens with the strict numeric policy.
func Classify(tokens []string) Result {
	return Default().Classify(tokens)
}

// IsNumeric reports whether tok is one or more ASCII digits and nothing else.
func IsNumeric(tok string) bool {
	if tok == "" {
		return false
	}
	for i := 0; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return false
		}
	}
	return true
}

// IsAlphabet reports whether tok is exactly one ASCII letter.
func IsAlphabet(tok string) bool {
	if len(tok) != 1 {
		return false
	}
	b := tok[0]
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// HighestAlphabet returns the case-insensitively greatest single-letter token
// in alphabets. Non-letter entries are skipped. On a tie the first occurrence
// wins. ok is false when no letter is present.
func HighestAlphabet(alphabets []string) (highest string, ok bool) {
	for _, tok := range alphabets {
		if !IsAlphabet(tok) {
			continue
		}
		if !ok || foldLetter(tok[0]) > foldLetter(highest[0]) {
			highest, ok = tok, true
		}
	}
	return highest, ok
}

// foldLetter lower-cases an ASCII letter.
func foldLetter(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
