package amplicon

import (
	"fmt"

	"github.com/telatin/seqfu-amplify/core/dna"
)

// Product is the final output unit: one amplicon cut from its template.
// Start/End/Length are post-trim (the leading primer's own bases excluded).
type Product struct {
	SourceFile string
	SequenceID string
	Start      int
	End        int
	First      Role
	Second     Role
	Length     int
	Seq        string
}

// BoundsError reports anchor coordinates outside the template. It means the
// upstream matcher and the sequence collection disagree.
type BoundsError struct {
	Start, End, SeqLen int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("amplicon [%d, %d) outside sequence of length %d", e.Start, e.End, e.SeqLen)
}

// Materialize slices candidate c out of seq. The candidate's Start is the
// leading primer's binding anchor, so it is first advanced by that primer's
// length (forward for Family A, reverse for Family B); End is already the
// coordinate just past the trailing primer's site. With reorient set,
// Family B products are reverse-complemented so every emitted sequence
// reads 5'→3' in the forward primer's direction.
//
// Reported Length is End-Start after the trim, so it can undershoot the
// engine's window by up to the leading primer's length. This matches the
// filter-on-anchors, report-on-insert convention of the seqfu-amplify
// pipeline and is locked in by the package tests.
func Materialize(c Candidate, seq []byte, fwdLen, revLen int, reorient bool) (Product, error) {
	start := c.Start
	switch c.First {
	case ForwardPlus:
		start += fwdLen
	case ReversePlus:
		start += revLen
	}
	if start < 0 || c.End < start || c.End > len(seq) {
		return Product{}, &BoundsError{Start: start, End: c.End, SeqLen: len(seq)}
	}

	slice := append([]byte(nil), seq[start:c.End]...)
	if reorient && c.First == ReversePlus && c.Second == ForwardMinus {
		rc, err := dna.RevComp(slice)
		if err != nil {
			return Product{}, err
		}
		slice = rc
	}
	return Product{
		Start:  start,
		End:    c.End,
		First:  c.First,
		Second: c.Second,
		Length: c.End - start,
		Seq:    string(slice),
	}, nil
}
