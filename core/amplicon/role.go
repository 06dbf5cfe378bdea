// Package amplicon infers PCR products from primer match positions and
// materializes the amplified subsequences. It never imports app, cli, or
// writer packages; keep it domain-only.
package amplicon

// Role tags which primer produced an anchor and on which strand it bound.
// The closed set makes the Family A/B pairing rules checkable in one place.
type Role uint8

const (
	ForwardPlus Role = iota
	ForwardMinus
	ReversePlus
	ReverseMinus
)

func (r Role) String() string {
	switch r {
	case ForwardPlus:
		return "forward_plus"
	case ForwardMinus:
		return "forward_minus"
	case ReversePlus:
		return "reverse_plus"
	case ReverseMinus:
		return "reverse_minus"
	}
	return "unknown"
}
