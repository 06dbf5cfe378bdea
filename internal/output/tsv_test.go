package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/telatin/seqfu-amplify/core/amplicon"
)

// The header is an external contract; changing it breaks downstream parsers.
func TestTSVHeaderColumns(t *testing.T) {
	cols := strings.Split(TSVHeader, "\t")
	assert.Equal(t, []string{
		"FileName", "SeqName", "StartPosition", "EndPosition",
		"FirstPrimer", "SecondPrimer", "AmpliconLength", "AmpliconSequence",
	}, cols)
}

func TestFormatRowTSV(t *testing.T) {
	p := amplicon.Product{
		SourceFile: "sample.fa.gz",
		SequenceID: "contig_4",
		Start:      17,
		End:        38,
		First:      amplicon.ForwardPlus,
		Second:     amplicon.ReverseMinus,
		Length:     21,
		Seq:        "NNNNNNNNNNNNNNGGTTTGG",
	}
	assert.Equal(t,
		"sample.fa.gz\tcontig_4\t17\t38\tforward_plus\treverse_minus\t21\tNNNNNNNNNNNNNNGGTTTGG",
		FormatRowTSV(p))
}
