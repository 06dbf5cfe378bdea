// Package writers streams amplicon products to an output sink.
package writers

import (
	"fmt"
	"io"

	"github.com/telatin/seqfu-amplify/core/amplicon"
	"github.com/telatin/seqfu-amplify/internal/output"
)

// StartProductWriter spins up a writer goroutine for amplicon.Products.
// The header (when enabled) is written up front, before any row and even
// when no rows follow. The first write error is reported on the returned
// channel after the input channel is closed; later products are drained.
func StartProductWriter(out io.Writer, header bool, bufSize int) (chan<- amplicon.Product, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan amplicon.Product, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		if header {
			_, err = fmt.Fprintln(out, output.TSVHeader)
		}
		for p := range in {
			if err != nil {
				continue
			}
			_, err = fmt.Fprintln(out, output.FormatRowTSV(p))
		}
		errCh <- err
	}()

	return in, errCh
}
