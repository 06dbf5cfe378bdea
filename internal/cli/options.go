package cli

import (
	"errors"
	"flag"
	"fmt"

	"github.com/telatin/seqfu-amplify/internal/version"
)

// Default primer pair: the 16S V3-V4 region (Klindworth et al. 2013).
const (
	DefaultForward = "CCTACGGGNGGCWGCAG"
	DefaultReverse = "GGACTACHVGGGTATCTAATCC"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Primer input
	Fwd string
	Rev string

	// Amplicon window
	MinLen int
	MaxLen int

	// Output
	ForwardStrand bool
	Header        bool // true unless --no-header

	// External matcher
	SeqfuBin string

	Verbose bool
	Version bool

	// Positional FASTA files
	SeqFiles []string
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: in-silico PCR over seqfu primer matches

Version: %s

Usage: %s [options] FASTA [FASTA...]
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help, noHeader bool

	fs.StringVar(&opt.Fwd, "forward", DefaultForward, "forward primer (5'→3') ["+DefaultForward+"]")
	fs.StringVar(&opt.Fwd, "f", DefaultForward, "forward primer (shorthand)")
	fs.StringVar(&opt.Rev, "reverse", DefaultReverse, "reverse primer (5'→3') ["+DefaultReverse+"]")
	fs.StringVar(&opt.Rev, "r", DefaultReverse, "reverse primer (shorthand)")

	fs.IntVar(&opt.MinLen, "min-length", 100, "minimum amplicon length [100]")
	fs.IntVar(&opt.MaxLen, "max-length", 10000, "maximum amplicon length [10000]")

	fs.BoolVar(&opt.ForwardStrand, "forward-strand", false, "reorient reverse-led amplicons to the forward strand [false]")
	fs.BoolVar(&noHeader, "no-header", false, "suppress the TSV header line [false]")
	fs.StringVar(&opt.SeqfuBin, "seqfu", "seqfu", "seqfu binary to invoke [seqfu]")

	fs.BoolVar(&opt.Verbose, "verbose", false, "print progress diagnostics to stderr [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.SeqFiles = fs.Args()
	opt.Header = !noHeader

	// Validation
	switch {
	case opt.Fwd == "" || opt.Rev == "":
		return opt, errors.New("--forward and --reverse must be non-empty")
	case len(opt.SeqFiles) == 0:
		return opt, errors.New("at least one FASTA file is required")
	case opt.MinLen <= 0:
		return opt, errors.New("--min-length must be > 0")
	case opt.MaxLen <= 0:
		return opt, errors.New("--max-length must be > 0")
	case opt.MinLen > opt.MaxLen:
		return opt, fmt.Errorf("--min-length (%d) exceeds --max-length (%d)", opt.MinLen, opt.MaxLen)
	case opt.SeqfuBin == "":
		return opt, errors.New("--seqfu must name a binary")
	}
	return opt, nil
}
