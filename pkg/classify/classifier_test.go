package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestClassify_Scenarios(t *testing.T) {
	tests := []struct {
		name          string
		tokens        []string
		wantNumbers   []string
		wantAlphabets []string
		wantHighest   string
	}{
		{
			name:          "mixed letters and numbers",
			tokens:        []string{"M", "1", "334", "4", "B"},
			wantNumbers:   []string{"1", "334", "4"},
			wantAlphabets: []string{"M", "B"},
			wantHighest:   "M",
		},
		{
			name:          "lowercase letters",
			tokens:        []string{"1", "2", "a", "b"},
			wantNumbers:   []string{"1", "2"},
			wantAlphabets: []string{"a", "b"},
			wantHighest:   "b",
		},
		{
			name:          "empty input",
			tokens:        []string{},
			wantNumbers:   []string{},
			wantAlphabets: []string{},
		},
		{
			name:          "nil input",
			tokens:        nil,
			wantNumbers:   []string{},
			wantAlphabets: []string{},
		},
		{
			name:          "nothing matches",
			tokens:        []string{"AB", "3.5", "-7"},
			wantNumbers:   []string{},
			wantAlphabets: []string{},
		},
		{
			name:          "mixed case compares case-insensitively",
			tokens:        []string{"z", "A", "Y"},
			wantNumbers:   []string{},
			wantAlphabets: []string{"z", "A", "Y"},
			wantHighest:   "z",
		},
		{
			name:          "leading zeros stay verbatim",
			tokens:        []string{"007", "0", "x"},
			wantNumbers:   []string{"007", "0"},
			wantAlphabets: []string{"x"},
			wantHighest:   "x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Classify(tt.tokens)

			require.NotNil(t, res.Numbers)
			require.NotNil(t, res.Alphabets)
			assert.Equal(t, tt.wantNumbers, res.Numbers)
			assert.Equal(t, tt.wantAlphabets, res.Alphabets)
			assert.Equal(t, tt.wantHighest, res.HighestAlphabet)
			assert.Equal(t, tt.wantHighest != "", res.HasHighestAlphabet())
		})
	}
}

func TestClassify_TieBreakFirstOccurrenceWins(t *testing.T) {
	tests := []struct {
		tokens []string
		want   string
	}{
		{[]string{"a", "A"}, "a"},
		{[]string{"A", "a"}, "A"},
		{[]string{"B", "b", "a"}, "B"},
		{[]string{"c", "Z", "z", "Z"}, "Z"},
		{[]string{"a", "A", "z", "Z"}, "z"},
	}

	for _, tt := range tests {
		res := Classify(tt.tokens)
		assert.Equal(t, tt.want, res.HighestAlphabet, "tokens %v", tt.tokens)
	}
}

func TestIsNumeric(t *testing.T) {
	accepted := []string{"0", "1", "334", "0001", "12345678901234567890123"}
	rejected := []string{"", " ", "3.4", "-5", "+5", "1a", "a1", " 1", "1 ", "1e3", "٣", "１"}

	for _, tok := range accepted {
		assert.True(t, IsNumeric(tok), "%q should be numeric", tok)
	}
	for _, tok := range rejected {
		assert.False(t, IsNumeric(tok), "%q should not be numeric", tok)
	}
}

func TestIsAlphabet(t *testing.T) {
	accepted := []string{"a", "z", "A", "Z", "m"}
	rejected := []string{"", "AB", "1", "é", "ß", "_", "[", "@", "`", "{", " a"}

	for _, tok := range accepted {
		assert.True(t, IsAlphabet(tok), "%q should be alphabetic", tok)
	}
	for _, tok := range rejected {
		assert.False(t, IsAlphabet(tok), "%q should not be alphabetic", tok)
	}
}

func TestHighestAlphabet(t *testing.T) {
	_, ok := HighestAlphabet(nil)
	assert.False(t, ok)

	_, ok = HighestAlphabet([]string{"AB", "1"})
	assert.False(t, ok)

	got, ok := HighestAlphabet([]string{"b", "AB", "Q", "q"})
	assert.True(t, ok)
	assert.Equal(t, "Q", got)
}

func TestClassify_Properties(t *testing.T) {
	inputs := [][]string{
		{"M", "1", "334", "4", "B"},
		{"AB", "3.5", "-7", "", "x", "9", "Y", "y"},
		{"q", "w", "e", "r", "t", "y", "10", "20"},
		{},
	}

	for _, tokens := range inputs {
		res := Classify(tokens)

		assert.LessOrEqual(t, len(res.Numbers)+len(res.Alphabets), len(tokens))
		for _, n := range res.Numbers {
			assert.True(t, IsNumeric(n))
		}
		for _, a := range res.Alphabets {
			assert.True(t, IsAlphabet(a))
		}

		highest, ok := HighestAlphabet(res.Alphabets)
		assert.Equal(t, highest, res.HighestAlphabet)
		assert.Equal(t, ok, res.HasHighestAlphabet())

		if len(res.Alphabets) > 0 {
			assert.Contains(t, res.Alphabets, res.HighestAlphabet)
		} else {
			assert.Empty(t, res.HighestAlphabet)
		}

		// Repeated classification yields the same result.
		assert.Equal(t, res, Classify(tokens))

		assert.Equal(t, subsequence(tokens, IsNumeric), res.Numbers)
		assert.Equal(t, subsequence(tokens, IsAlphabet), res.Alphabets)
	}
}

func TestResult_Unmatched(t *testing.T) {
	tokens := []string{"AB", "1", "c", "-2"}
	res := Classify(tokens)
	assert.Equal(t, 2, res.Unmatched(len(tokens)))
	assert.Equal(t, 0, res.Unmatched(0))
}

func TestNew(t *testing.T) {
	c, err := New(PolicyStrict)
	require.NoError(t, err)
	assert.Equal(t, PolicyStrict, c.Policy())

	c, err = New("")
	require.NoError(t, err)
	assert.Equal(t, PolicyStrict, c.Policy())

	c, err = New(PolicyCoercive)
	require.NoError(t, err)
	assert.Equal(t, PolicyCoercive, c.Policy())

	_, err = New("loose")
	assert.Error(t, err)
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    NumericPolicy
		wantErr bool
	}{
		{"", PolicyStrict, false},
		{"strict", PolicyStrict, false},
		{"STRICT", PolicyStrict, false},
		{" coercive ", PolicyCoercive, false},
		{"lenient", "", true},
	}

	for _, tt := range tests {
		got, err := ParsePolicy(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func subsequence(tokens []string, keep func(string) bool) []string {
	out := []string{}
	for _, tok := range tokens {
		if keep(tok) {
			out = append(out, tok)
		}
	}
	return out
}
