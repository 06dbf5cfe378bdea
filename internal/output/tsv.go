// Package output formats amplicon products for the TSV report.
package output

import (
	"fmt"

	"github.com/telatin/seqfu-amplify/core/amplicon"
)

// TSVHeader is the canonical header row for the report.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "FileName\tSeqName\tStartPosition\tEndPosition\tFirstPrimer\tSecondPrimer\tAmpliconLength\tAmpliconSequence"

// FormatRowTSV returns the 8 report columns (no trailing newline).
func FormatRowTSV(p amplicon.Product) string {
	return fmt.Sprintf("%s\t%s\t%d\t%d\t%s\t%s\t%d\t%s",
		p.SourceFile, p.SequenceID,
		p.Start, p.End,
		p.First, p.Second,
		p.Length, p.Seq,
	)
}
