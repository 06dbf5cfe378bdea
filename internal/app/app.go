// Package app wires CLI options, the external matcher, the inference
// engine, and the report writer into the amplify command.
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"sort"

	"go.uber.org/multierr"

	"github.com/telatin/seqfu-amplify/core/amplicon"
	"github.com/telatin/seqfu-amplify/core/fasta"
	"github.com/telatin/seqfu-amplify/internal/cli"
	"github.com/telatin/seqfu-amplify/internal/matcher"
	"github.com/telatin/seqfu-amplify/internal/version"
	"github.com/telatin/seqfu-amplify/internal/writers"
)

// RunContext parses argv and runs the full in-silico PCR flow.
// Exit codes: 0 ok, 1 one or more collections failed, 2 usage, 3 write
// error, 130 canceled.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	return runContext(parent, argv, stdout, stderr, nil)
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// RunContextWithRunner substitutes the external matcher handle; integration
// tests inject a fake here instead of spawning seqfu.
func RunContextWithRunner(parent context.Context, argv []string, stdout, stderr io.Writer, r matcher.Runner) int {
	return runContext(parent, argv, stdout, stderr, r)
}

func runContext(parent context.Context, argv []string, stdout, stderr io.Writer, runner matcher.Runner) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("amplify")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		fs.Usage()
		return flushCode(outw, stderr, 0)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flushCode(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "amplify version %s\n", version.Version)
		return flushCode(outw, stderr, 0)
	}

	eng, err := amplicon.New(amplicon.Config{MinLen: opts.MinLen, MaxLen: opts.MaxLen})
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	if runner == nil {
		runner = matcher.ExecRunner{Bin: opts.SeqfuBin}
	}
	sq := matcher.New(runner)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	if ver, verr := sq.Version(ctx); verr != nil {
		_, _ = fmt.Fprintf(stderr, "warning: cannot probe %s: %v\n", opts.SeqfuBin, verr)
	} else if opts.Verbose {
		_, _ = fmt.Fprintf(stderr, "# Using seqfu version: %s\n", ver)
	}

	inCh, writeErr := writers.StartProductWriter(outw, opts.Header, 64)
	send := func(p amplicon.Product) error {
		select {
		case inCh <- p:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	var errs error
	for _, path := range opts.SeqFiles {
		if ctx.Err() != nil {
			break
		}
		if err := processFile(ctx, sq, eng, opts, path, send, stderr); err != nil {
			if errors.Is(err, context.Canceled) {
				break
			}
			// This collection is aborted; rows already written stay put
			// and the remaining collections still run.
			_, _ = fmt.Fprintf(stderr, "error: %s: %v\n", path, err)
			errs = multierr.Append(errs, err)
		}
	}
	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		_, _ = fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}

	if ctx.Err() != nil {
		return 130
	}
	if errs != nil {
		return 1
	}
	return 0
}

// processFile runs one sequence collection end to end: index the FASTA,
// grep both primers, intersect the match maps, infer and materialize.
func processFile(
	ctx context.Context,
	sq matcher.Seqfu,
	eng *amplicon.Engine,
	opts cli.Options,
	path string,
	send func(amplicon.Product) error,
	stderr io.Writer,
) error {
	seqs, err := fasta.Index(path)
	if err != nil {
		return err
	}
	if opts.Verbose {
		_, _ = fmt.Fprintf(stderr, "# Processing %s with %d sequences\n", path, len(seqs))
	}

	fwdLines, err := sq.Grep(ctx, opts.Fwd, path)
	if err != nil {
		return err
	}
	revLines, err := sq.Grep(ctx, opts.Rev, path)
	if err != nil {
		return err
	}
	fwdSets, err := matcher.ParseAnnotations(fwdLines)
	if err != nil {
		return err
	}
	revSets, err := matcher.ParseAnnotations(revLines)
	if err != nil {
		return err
	}

	// Presence in both maps is the candidate membership test; process the
	// common identifiers in lexicographic order for deterministic output.
	common := make([]string, 0, len(fwdSets))
	for id := range fwdSets {
		if _, ok := revSets[id]; ok {
			common = append(common, id)
		}
	}
	sort.Strings(common)
	if opts.Verbose {
		_, _ = fmt.Fprintf(stderr, "# Found %d sequences with both primers\n", len(common))
	}

	base := filepath.Base(path)
	fwdLen, revLen := len(opts.Fwd), len(opts.Rev)
	for _, id := range common {
		seq, ok := seqs[id]
		if !ok {
			return fmt.Errorf("matcher reported %q but it is absent from %s", id, path)
		}
		f, r := fwdSets[id], revSets[id]
		cands := eng.Find(f.Plus, f.Minus, r.Plus, r.Minus)
		if opts.Verbose {
			_, _ = fmt.Fprintf(stderr, "# Found %d amplicons for %s\n", len(cands), id)
		}
		for _, c := range cands {
			p, err := amplicon.Materialize(c, seq, fwdLen, revLen, opts.ForwardStrand)
			if err != nil {
				return err
			}
			p.SourceFile = base
			p.SequenceID = id
			if err := send(p); err != nil {
				return err
			}
		}
	}
	return nil
}

func flushCode(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}
