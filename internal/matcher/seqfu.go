package matcher

import (
	"bufio"
	"bytes"
	"context"
	"strings"
)

// Seqfu wraps the seqfu binary behind a Runner.
type Seqfu struct {
	runner Runner
}

// New builds a Seqfu client around the given runner.
func New(r Runner) Seqfu { return Seqfu{runner: r} }

// Version probes the tool, for startup diagnostics.
func (s Seqfu) Version(ctx context.Context) (string, error) {
	out, err := s.runner.Run(ctx, "--version")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// Grep runs `seqfu grep -A -o <oligo> <path>` and returns the annotation
// header lines (those starting with '>'). seqfu emits one line per sequence
// with at least one match on either strand; sequences without matches are
// simply absent.
func (s Seqfu) Grep(ctx context.Context, oligo, fastaPath string) ([]string, error) {
	out, err := s.runner.Run(ctx, "grep", "-A", "-o", oligo, fastaPath)
	if err != nil {
		return nil, err
	}

	var lines []string
	sc := bufio.NewScanner(bytes.NewReader(out))
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for sc.Scan() {
		if line := sc.Text(); strings.HasPrefix(line, ">") {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
