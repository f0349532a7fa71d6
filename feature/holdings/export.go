package holdings

import (
	"context"
	"fmt"
	"io"
)

// Export copies every record with at least one valid item from src to sink,
// in input order. A nil sink only counts. Totals are returned only when the
// whole input was processed.
func (f *Filter) Export(ctx context.Context, src Source, sink Sink) (Totals, error) {
	var totals Totals
	for {
		if err := ctx.Err(); err != nil {
			return Totals{}, err
		}

		bib, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Totals{}, fmt.Errorf("export aborted after %d records: %w", totals.Records, err)
		}

		if !f.Tally(bib, &totals).Includable || sink == nil {
			continue
		}
		if err := sink.Write(bib); err != nil {
			return Totals{}, err
		}
	}
	return totals, nil
}
