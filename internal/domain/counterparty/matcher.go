package counterparty

import (
	"sort"
	"strings"

	"github.com/agext/levenshtein"
)

// MinSimilarity is the acceptance threshold for fuzzy matches: a candidate
// at exactly 0.70 matches, anything below does not.
const MinSimilarity = 0.70

// corporateSuffixes are stripped from the end of normalized names, longest
// first so "corporation" is never half-eaten by "corp".
var corporateSuffixes = []string{"corporation", "limited", "bank", "corp", "ltd", "inc"}

// aliases maps normalized abbreviations and common misspellings to the
// normalized form of the canonical registry name. Values must stay
// normalized (see Normalize) or the exact-match retry will never hit.
var aliases = map[string]string{
	"induslnd": "indusind",
	"kotak":    "kotakmahindra",
	"sbi":      "statebankofindia",
	"pnb":      "punjabnationalbank",
	"boi":      "bankofindia",
	"bob":      "bankofbaroda",
}

// MatchMethod says how a resolution was found
type MatchMethod string

const (
	MatchExact MatchMethod = "exact"
	MatchAlias MatchMethod = "alias"
	MatchFuzzy MatchMethod = "fuzzy"
)

// Match is a successful resolution of a freeform name
type Match struct {
	Record     *Record     `json:"record"`
	Similarity float64     `json:"similarity"`
	Method     MatchMethod `json:"method"`
}

// Normalize lower-cases a name, strips every non-alphanumeric character and
// removes trailing corporate suffixes. Normalize(Normalize(x)) == Normalize(x).
func Normalize(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	s := b.String()

	for stripped := true; stripped; {
		stripped = false
		for _, suffix := range corporateSuffixes {
			if strings.HasSuffix(s, suffix) && len(s) > len(suffix) {
				s = strings.TrimSuffix(s, suffix)
				stripped = true
			}
		}
	}

	return strings.TrimSpace(s)
}

// Similarity is 1 - editDistance/max(len(a), len(b)) over runes. Both inputs
// are expected to be normalized already.
func Similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 0
	}
	distance := levenshtein.Distance(a, b, nil)
	return 1 - float64(distance)/float64(maxLen)
}

// Resolve reconciles a freeform institution name against the registry:
// exact match on the normalized form first, then the alias table, then the
// best fuzzy candidate at or above MinSimilarity. Candidates tied on
// similarity resolve to the lexicographically smaller canonical name.
// Returns false when nothing matches.
//
// Cost is O(k*n*m) over k candidates; callers resolving per keystroke must
// memoize (see service.ReconciliationService).
func Resolve(freeform string, candidates []*Record) (*Match, bool) {
	normalized := Normalize(freeform)
	if normalized == "" || len(candidates) == 0 {
		return nil, false
	}

	// Deterministic tie-break: iterate candidates in canonical name order so
	// the first strictly-better candidate wins.
	sorted := make([]*Record, len(candidates))
	copy(sorted, candidates)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})

	if m, ok := exactMatch(normalized, sorted); ok {
		return m, true
	}

	if key, ok := aliases[normalized]; ok {
		if m, ok := exactMatch(key, sorted); ok {
			m.Method = MatchAlias
			return m, true
		}
	}

	var best *Match
	for _, candidate := range sorted {
		similarity := Similarity(normalized, Normalize(candidate.Name))
		if best == nil || similarity > best.Similarity {
			best = &Match{
				Record:     candidate,
				Similarity: similarity,
				Method:     MatchFuzzy,
			}
		}
	}

	if best != nil && best.Similarity >= MinSimilarity {
		return best, true
	}
	return nil, false
}

func exactMatch(normalized string, candidates []*Record) (*Match, bool) {
	for _, candidate := range candidates {
		if Normalize(candidate.Name) == normalized {
			return &Match{
				Record:     candidate,
				Similarity: 1,
				Method:     MatchExact,
			}, true
		}
	}
	return nil, false
}
