// Package fasta parses FASTA sequence collections, plain or gzipped.
package fasta

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// Record is one parsed FASTA entry. Immutable once emitted.
type Record struct {
	ID      string
	Comment string
	Seq     []byte
}

// FormatError reports malformed FASTA input.
type FormatError struct {
	Path string
	Line int
	Msg  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Msg)
}

// EachRecord opens path (see openReader) and emits records in file order.
// A header line starts with '>'; its first whitespace-delimited token is the
// ID and the remainder the comment. Sequence lines are concatenated with
// line terminators trimmed; no case or alphabet normalization happens here.
// Sequence data before the first header is a *FormatError. Empty input
// emits nothing. Returning a non-nil error from emit stops the scan.
func EachRecord(path string, emit func(Record) error) error {
	rc, err := openReader(path)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()
	return parse(path, rc, emit)
}

func parse(path string, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		cur     Record
		started bool
		lineNo  int
	)
	flush := func() error {
		if !started {
			return nil
		}
		rec := cur
		rec.Seq = append([]byte(nil), cur.Seq...)
		return emit(rec)
	}

	for sc.Scan() {
		lineNo++
		line := bytes.TrimRight(sc.Bytes(), "\r\n")
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			id, comment := splitHeader(line[1:])
			cur = Record{ID: id, Comment: comment}
			started = true
			continue
		}
		if !started {
			return &FormatError{Path: path, Line: lineNo, Msg: "sequence data before first header"}
		}
		cur.Seq = append(cur.Seq, bytes.TrimSpace(line)...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan %s: %w", path, err)
	}
	return flush()
}

// Index eagerly parses path into an ID → sequence map for one collection's
// processing lifetime.
func Index(path string) (map[string][]byte, error) {
	seqs := make(map[string][]byte)
	err := EachRecord(path, func(r Record) error {
		seqs[r.ID] = r.Seq
		return nil
	})
	if err != nil {
		return nil, err
	}
	return seqs, nil
}

func splitHeader(hdr []byte) (id, comment string) {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i]), string(bytes.TrimSpace(hdr[i+1:]))
	}
	return string(hdr), ""
}
