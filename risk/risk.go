// Package risk classifies free text for crisis signals.
//
// Matching is purely lexical: a fixed vocabulary of crisis phrases is matched
// case-insensitively as substrings, with no stemming, context window, or
// negation handling, so "I do NOT want to kill myself" still matches. For
// safety-critical escalation the trade-off deliberately favors false
// positives over false negatives.
package risk

import "strings"

// Tier is the coarse severity of a matched crisis signal.
type Tier int

const (
	TierNone     Tier = iota
	TierElevated      // self-harm language
	TierSevere        // suicidal ideation language
)

// String returns the tier name.
func (t Tier) String() string {
	switch t {
	case TierElevated:
		return "elevated"
	case TierSevere:
		return "severe"
	default:
		return "none"
	}
}

// Classification is the outcome of classifying one piece of text.
type Classification struct {
	Crisis bool
	Tier   Tier
}

type pattern struct {
	phrase string
	tier   Tier
}

// Crisis phrase vocabulary. Phrases are lowercase; apostrophe variants are
// listed explicitly because matching is byte-for-byte substring.
var patterns = []pattern{
	{"suicide", TierSevere},
	{"suicidal", TierSevere},
	{"kill myself", TierSevere},
	{"end my life", TierSevere},
	{"want to die", TierSevere},
	{"don't want to live", TierSevere},
	{"don’t want to live", TierSevere},
	{"dont want to live", TierSevere},
	{"self-harm", TierElevated},
	{"self harm", TierElevated},
	{"cut myself", TierElevated},
	{"hurt myself", TierElevated},
}

// Classify reports whether text contains a crisis signal and at what tier.
// The highest tier among all matched phrases wins. Classify is pure and
// deterministic; user input and companion replies go through the same
// function, and a positive on either side escalates identically.
func Classify(text string) Classification {
	lower := strings.ToLower(text)
	var out Classification
	for _, p := range patterns {
		if !strings.Contains(lower, p.phrase) {
			continue
		}
		out.Crisis = true
		if p.tier > out.Tier {
			out.Tier = p.tier
		}
	}
	return out
}
