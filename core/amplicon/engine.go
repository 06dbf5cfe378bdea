package amplicon

import (
	"fmt"
	"sort"
)

// Config holds the amplicon length window (inclusive bounds).
type Config struct {
	MinLen int
	MaxLen int
}

// ConfigError reports an invalid length window.
type ConfigError struct {
	Min, Max int
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid length window [%d, %d]", e.Min, e.Max)
}

// Candidate is one inferred amplicon interval in plus-strand coordinates.
// End > Start and End-Start lies within the engine's length window.
type Candidate struct {
	Start  int
	End    int
	First  Role
	Second Role
}

// Engine enumerates candidate amplicons from primer anchor positions.
type Engine struct {
	cfg Config
}

// New validates the length window and returns an Engine.
func New(c Config) (*Engine, error) {
	if c.MinLen <= 0 || c.MaxLen <= 0 || c.MinLen > c.MaxLen {
		return nil, &ConfigError{Min: c.MinLen, Max: c.MaxLen}
	}
	return &Engine{cfg: c}, nil
}

// Find pairs anchors into the two biologically valid families:
//
//	Family A: forward primer on plus strand (Start) with reverse primer on
//	          minus strand (End)
//	Family B: reverse primer on plus strand (Start) with forward primer on
//	          minus strand (End)
//
// Minus-strand anchors are already expressed in plus-strand coordinates as
// the position just past the primer's binding site, so End-Start is the
// pre-trim amplicon span. No other role combination is emitted.
//
// The four lists are treated as unordered anchor sets. Precondition: each
// list is duplicate-free (the match set adapter enforces this); Find does
// not deduplicate, so a duplicated anchor would surface as duplicate rows
// rather than being silently masked.
//
// Results are ordered by (Start, End, First, Second), which is total and
// deterministic for identical inputs.
func (e *Engine) Find(fwdPlus, fwdMinus, revPlus, revMinus []int) []Candidate {
	var out []Candidate
	out = e.pair(out, fwdPlus, revMinus, ForwardPlus, ReverseMinus)
	out = e.pair(out, revPlus, fwdMinus, ReversePlus, ForwardMinus)
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		if a.End != b.End {
			return a.End < b.End
		}
		if a.First != b.First {
			return a.First < b.First
		}
		return a.Second < b.Second
	})
	return out
}

// pair is the O(|starts|*|ends|) cross product with the length filter.
// Anchor counts are tens per sequence, so no indexing is warranted.
func (e *Engine) pair(out []Candidate, starts, ends []int, first, second Role) []Candidate {
	for _, s := range starts {
		for _, end := range ends {
			if l := end - s; l >= e.cfg.MinLen && l <= e.cfg.MaxLen {
				out = append(out, Candidate{Start: s, End: end, First: first, Second: second})
			}
		}
	}
	return out
}
