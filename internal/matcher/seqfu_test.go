package matcher

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner returns canned output keyed by the first argument.
type fakeRunner struct {
	out  map[string][]byte
	err  error
	args [][]string
}

func (f *fakeRunner) Run(_ context.Context, args ...string) ([]byte, error) {
	f.args = append(f.args, args)
	if f.err != nil {
		return nil, f.err
	}
	return f.out[args[0]], nil
}

func TestSeqfuVersionTrims(t *testing.T) {
	fr := &fakeRunner{out: map[string][]byte{"--version": []byte("1.20.0\n")}}
	v, err := New(fr).Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.20.0", v)
}

func TestSeqfuGrepKeepsHeaderLinesOnly(t *testing.T) {
	fr := &fakeRunner{out: map[string][]byte{
		"grep": []byte(">s1 for-matches=1:rev-matches=\nACGT\n>s2 for-matches=:rev-matches=9\n"),
	}}
	lines, err := New(fr).Grep(context.Background(), "CAGATA", "in.fa")
	require.NoError(t, err)
	assert.Equal(t, []string{
		">s1 for-matches=1:rev-matches=",
		">s2 for-matches=:rev-matches=9",
	}, lines)

	require.Len(t, fr.args, 1)
	assert.Equal(t, []string{"grep", "-A", "-o", "CAGATA", "in.fa"}, fr.args[0])
}

func TestSeqfuGrepPropagatesRunnerError(t *testing.T) {
	boom := &ToolError{Args: []string{"seqfu"}, Err: errors.New("exit status 1"), Stderr: "bad pattern"}
	fr := &fakeRunner{err: boom}
	_, err := New(fr).Grep(context.Background(), "CAGATA", "in.fa")
	var terr *ToolError
	require.True(t, errors.As(err, &terr))
	assert.Contains(t, terr.Error(), "bad pattern")
}

func TestExecRunnerMissingBinary(t *testing.T) {
	_, err := ExecRunner{Bin: "/nonexistent/seqfu-amplify-test-binary"}.Run(context.Background(), "--version")
	var terr *ToolError
	require.True(t, errors.As(err, &terr), "got %v", err)
	assert.NotEmpty(t, terr.Args)
}
