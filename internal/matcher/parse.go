package matcher

import (
	"fmt"
	"strconv"
	"strings"
)

// Annotation tags embedded in seqfu grep header lines, e.g.
//
//	>seq1 some comment for-matches=11,99:rev-matches=38
const (
	fwdTag = "for-matches="
	revTag = ":rev-matches="
)

// MatchSet holds one primer's anchor positions on one sequence, in
// plus-strand coordinates. Minus entries are the coordinate just past the
// primer's site on the complementary strand.
type MatchSet struct {
	Plus  []int
	Minus []int
}

// ParseError reports an annotation line that violates the matcher contract.
type ParseError struct {
	Line string
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("bad matcher annotation %q: %s", e.Line, e.Msg)
}

// ParseAnnotations converts grep header lines into an ID → MatchSet map.
// IDs the matcher never reported are simply absent; that absence is how
// candidate membership is decided downstream. A line missing either tag is
// an upstream contract violation and fails loudly. Duplicate positions
// within a list are rejected too: the inference engine relies on
// duplicate-free lists and a silent fix here would mask a matcher bug.
func ParseAnnotations(lines []string) (map[string]MatchSet, error) {
	sets := make(map[string]MatchSet, len(lines))
	for _, line := range lines {
		id, set, err := parseLine(line)
		if err != nil {
			return nil, err
		}
		sets[id] = set
	}
	return sets, nil
}

func parseLine(line string) (string, MatchSet, error) {
	if !strings.HasPrefix(line, ">") {
		return "", MatchSet{}, &ParseError{Line: line, Msg: "missing '>' header"}
	}
	fields := strings.Fields(line[1:])
	if len(fields) == 0 {
		return "", MatchSet{}, &ParseError{Line: line, Msg: "empty sequence identifier"}
	}
	id := fields[0]

	i := strings.Index(line, fwdTag)
	if i < 0 {
		return "", MatchSet{}, &ParseError{Line: line, Msg: "missing " + fwdTag + " tag"}
	}
	rest := line[i+len(fwdTag):]
	j := strings.Index(rest, revTag)
	if j < 0 {
		return "", MatchSet{}, &ParseError{Line: line, Msg: "missing " + strings.TrimPrefix(revTag, ":") + " tag"}
	}

	plus, err := parsePositions(line, rest[:j])
	if err != nil {
		return "", MatchSet{}, err
	}
	minusField, _, _ := strings.Cut(rest[j+len(revTag):], " ")
	minus, err := parsePositions(line, minusField)
	if err != nil {
		return "", MatchSet{}, err
	}
	return id, MatchSet{Plus: plus, Minus: minus}, nil
}

// parsePositions parses a comma-separated integer list. Empty fields are
// skipped (an empty list is valid and common), never turned into zeros.
func parsePositions(line, csv string) ([]int, error) {
	var out []int
	seen := make(map[int]struct{})
	for _, f := range strings.Split(csv, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, &ParseError{Line: line, Msg: fmt.Sprintf("bad position %q", f)}
		}
		if n < 0 {
			return nil, &ParseError{Line: line, Msg: fmt.Sprintf("negative position %d", n)}
		}
		if _, dup := seen[n]; dup {
			return nil, &ParseError{Line: line, Msg: fmt.Sprintf("duplicate position %d", n)}
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out, nil
}
