package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"windows line endings", "a\r\nb\rc", "a\nb\nc"},
		{"unicode dashes", "Short\u2013Term \u2212 Long\u2014Term", "Short-Term - Long-Term"},
		{"non-breaking space", "Box\u00a01\u00a0Wages", "Box 1 Wages"},
		{"letter O between digits", "1O5,OOO", "105,OOO"},
		{"alternating O between digits", "1O1O1", "10101"},
		{"letter l and I between digits", "8l2I5", "81215"},
		{"box letter l", "Box l Wages", "Box 1 Wages"},
		{"box letter I after spaces", "BOX   I wages", "BOX 1 wages"},
		{"label left alone", "10 Other 2,000", "10 Other 2,000"},
		{"word left alone", "Box Interest", "Box Interest"},
		{"horizontal whitespace", "a \t  b", "a b"},
		{"blank line runs", "a\n\n\n\n\nb", "a\n\nb"},
		{"trimmed", "  \n a \n  ", "a"},
		{"decomposed accent composed", "Cafe\u0301", "Caf\u00e9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeText(tt.in))
		})
	}
}

func TestNormalizeTextIdempotent(t *testing.T) {
	inputs := []string{
		"Form W-2 2024\r\nBox I Wages $85,2O0.00\n\n\n\nBox 2 Federa1 12,9O0",
		"1O1O1 1lO1 Box  l  x",
		"\u2013  Box\tI  1O\n \n \n",
		"  Short\u2010Term  Transactions \f page two 0l0",
		"Cafe\u0301 1I1I1",
	}

	for _, in := range inputs {
		once := NormalizeText(in)
		assert.Equal(t, once, NormalizeText(once), "input %q", in)
	}
}
