// Package matcher drives the external primer-match provider (seqfu) and
// adapts its per-sequence annotations into integer match sets.
package matcher

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner is the capability handle for the external tool: run with args,
// get stdout or a diagnostic error. Injected so tests (and future
// providers) can substitute the binary.
type Runner interface {
	Run(ctx context.Context, args ...string) ([]byte, error)
}

// ToolError reports a failed external invocation, with whatever the tool
// wrote to stderr preserved for the user.
type ToolError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *ToolError) Error() string {
	msg := fmt.Sprintf("external tool %q: %v", strings.Join(e.Args, " "), e.Err)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *ToolError) Unwrap() error { return e.Err }

// ExecRunner invokes a binary found on PATH (or an absolute path).
type ExecRunner struct {
	Bin string
}

func (r ExecRunner) Run(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, r.Bin, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, &ToolError{
			Args:   append([]string{r.Bin}, args...),
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}
	return stdout.Bytes(), nil
}
