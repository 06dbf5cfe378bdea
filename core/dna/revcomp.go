// Package dna holds strand-level sequence operations.
package dna

import "fmt"

// complement maps each accepted nucleotide to its Watson-Crick partner.
// A zero entry marks a byte outside the {A,C,G,T,N} alphabet.
var complement [256]byte

func init() {
	pairs := [...][2]byte{{'A', 'T'}, {'C', 'G'}, {'G', 'C'}, {'T', 'A'}, {'N', 'N'}}
	for _, p := range pairs {
		complement[p[0]] = p[1]
		complement[p[0]+'a'-'A'] = p[1] + 'a' - 'A'
	}
}

// ValidationError reports a byte outside the nucleotide alphabet.
type ValidationError struct {
	Base byte
	Pos  int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid base %q at position %d", e.Base, e.Pos)
}

// RevComp returns the reverse complement of seq, preserving case.
// The input alphabet is exactly {A,C,G,T,N} in either case; the first
// offending byte aborts with a *ValidationError and no partial result.
func RevComp(seq []byte) ([]byte, error) {
	n := len(seq)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		c := complement[seq[i]]
		if c == 0 {
			return nil, &ValidationError{Base: seq[i], Pos: i}
		}
		out[n-1-i] = c
	}
	return out, nil
}
