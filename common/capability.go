package common

import "sort"

// Capability tokens that are not effects.
const (
	CapabilityBrightness = `brightness`
	CapabilityDPI        = `dpi`
	CapabilityDPIStages  = `dpi_stages`
	CapabilityPollRate   = `poll_rate`
	CapabilityKbdLayout  = `kbd_layout`
)

// CapabilitySet is an immutable set of capability tokens. Effects are stored
// under their catalog token, auxiliary features under the Capability*
// constants. A set is computed once when a Led or Device is constructed; if
// the daemon's capabilities change the owner must be recreated.
type CapabilitySet struct {
	tokens map[string]struct{}
}

// NewCapabilitySet returns a set holding tokens. Duplicates are ignored.
func NewCapabilitySet(tokens ...string) CapabilitySet {
	m := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		m[t] = struct{}{}
	}
	return CapabilitySet{tokens: m}
}

// Has reports whether token is in the set. Unknown tokens are simply absent.
func (s CapabilitySet) Has(token string) bool {
	_, ok := s.tokens[token]
	return ok
}

// HasEffect reports whether the effect's token is in the set.
func (s CapabilitySet) HasEffect(e Effect) bool {
	if !e.Valid() {
		return false
	}
	return s.Has(e.Token())
}

// Effects returns the effects in the set in catalog order.
func (s CapabilitySet) Effects() []Effect {
	var effects []Effect
	for _, e := range Effects() {
		if s.HasEffect(e) {
			effects = append(effects, e)
		}
	}
	return effects
}

// Tokens returns a sorted copy of every token in the set.
func (s CapabilitySet) Tokens() []string {
	tokens := make([]string, 0, len(s.tokens))
	for t := range s.tokens {
		tokens = append(tokens, t)
	}
	sort.Strings(tokens)
	return tokens
}

// Len returns the number of tokens in the set.
func (s CapabilitySet) Len() int {
	return len(s.tokens)
}
