// Package classify partitions request tokens into numeric and single-letter
// alphabetic tokens and picks the highest alphabetic token.
//
// # Rules
//
// A token is numeric when it is one or more ASCII digits and nothing else.
// Signs, decimal points and whitespace disqualify it, so "3.4", "-5" and "1a"
// are not numeric. A token is alphabetic when it is exactly one ASCII letter.
// Tokens matching neither rule (for example "AB") are dropped from both lists.
//
// The highest alphabetic token is found by comparing letters case-insensitively.
// The original casing is kept in the output, and when two letters compare equal
// (for example "a" and "A") the one seen first wins.
//
// # Usage
//
//	res := classify.Classify([]string{"M", "1", "334", "4", "B"})
//	// res.Numbers         == []string{"1", "334", "4"}
//	// res.Alphabets       == []string{"M", "B"}
//	// res.HighestAlphabet == "M"
//
// # Numeric policies
//
// PolicyStrict is the default and the documented contract. PolicyCoercive
// accepts anything a general numeric coercion would turn into a number:
// signed and fractional decimals, exponents, Infinity, 0x/0o/0b integers and
// blank strings. It exists for clients migrating from deployments that relied
// on that behavior and must be enabled explicitly.
package classify
