package counterparty

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercases and strips punctuation", "HDFC Bank Ltd.", "hdfc"},
		{"strips bank suffix", "HDFC Bank", "hdfc"},
		{"strips stacked suffixes", "Axis Bank Limited", "axis"},
		{"strips corporation before corp", "Acme Corporation", "acme"},
		{"keeps digits", "Bank 24x7 Ltd", "bank24x7"},
		{"never strips to empty", "Bank", "bank"},
		{"spaces and symbols removed", "  State Bank of India  ", "statebankofindia"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"HDFC Bank Ltd.", "Kotak Mahindra Bank", "Bank", "ICICI Bank Corp"}
	for _, input := range inputs {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once), "Normalize must be idempotent for %q", input)
	}
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("hdfc", "hdfc"))

	// one edit over twelve runes
	assert.InDelta(t, 0.92, Similarity("kotakmahind", "kotakmahindr"), 0.01)
}

func TestResolveExactAndAlias(t *testing.T) {
	registry := []*Record{
		{Name: "HDFC Bank"},
		{Name: "IndusInd Bank"},
		{Name: "Kotak Mahindra Bank"},
	}

	m, ok := Resolve("HDFC BANK LTD.", registry)
	assert.True(t, ok)
	assert.Equal(t, "HDFC Bank", m.Record.Name)
	assert.Equal(t, MatchExact, m.Method)
	assert.Equal(t, 1.0, m.Similarity)

	// Common misspelling resolves through the alias table
	m, ok = Resolve("INDUSLND BANK", registry)
	assert.True(t, ok)
	assert.Equal(t, "IndusInd Bank", m.Record.Name)
	assert.Equal(t, MatchAlias, m.Method)

	// Abbreviation alias
	m, ok = Resolve("Kotak", registry)
	assert.True(t, ok)
	assert.Equal(t, "Kotak Mahindra Bank", m.Record.Name)
	assert.Equal(t, MatchAlias, m.Method)
}

func TestResolveFuzzyThreshold(t *testing.T) {
	registry := []*Record{{Name: "IndusInd Bank"}}

	// "indusindbnk" vs "indusind": 3 edits over 11 runes = 0.727
	m, ok := Resolve("IndusInd Bnk", registry)
	assert.True(t, ok)
	assert.Equal(t, MatchFuzzy, m.Method)
	assert.GreaterOrEqual(t, m.Similarity, MinSimilarity)

	// Nothing close enough
	_, ok = Resolve("Completely Different", registry)
	assert.False(t, ok)
}

func TestResolveThresholdBoundary(t *testing.T) {
	// "abcdefghij" vs "abcdefgxyz": 3 edits over 10 runes = 0.70 exactly
	registry := []*Record{{Name: "abcdefgxyz"}}

	m, ok := Resolve("abcdefghij", registry)
	assert.True(t, ok, "similarity exactly at the threshold must match")
	assert.InDelta(t, 0.70, m.Similarity, 0.0001)

	// One more edit drops below the threshold
	registry = []*Record{{Name: "abcdefwxyz"}}
	_, ok = Resolve("abcdefghij", registry)
	assert.False(t, ok)
}

func TestResolveTieBreaksLexicographically(t *testing.T) {
	// Both candidates are one edit from the input at similarity 0.8
	registry := []*Record{
		{Name: "bcdef"},
		{Name: "abcde"},
	}

	m, ok := Resolve("bcde", registry)
	assert.True(t, ok)
	assert.Equal(t, "abcde", m.Record.Name)
}

func TestResolveEmptyInputs(t *testing.T) {
	registry := []*Record{{Name: "HDFC Bank"}}

	_, ok := Resolve("", registry)
	assert.False(t, ok)

	_, ok = Resolve("...", registry)
	assert.False(t, ok)

	_, ok = Resolve("HDFC Bank", nil)
	assert.False(t, ok)
}
