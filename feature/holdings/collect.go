package holdings

import (
	"context"
	"errors"
	"fmt"
	"io"

	"sharedprint/core/reconcile"

	"go.uber.org/zap"
)

// ErrMissingIdentifier is wrapped by MissingIdentifierError.
var ErrMissingIdentifier = errors.New("circulating record has no identifier")

// MissingIdentifierError reports a record that has valid items but cannot be
// reconciled because it carries no identifier.
type MissingIdentifierError struct {
	Position int
	Title    string
}

func (e *MissingIdentifierError) Error() string {
	return fmt.Sprintf("record %d %q: %s", e.Position, e.Title, ErrMissingIdentifier)
}

func (e *MissingIdentifierError) Unwrap() error {
	return ErrMissingIdentifier
}

// Collect reads all of src and returns the identifiers of records with at
// least one valid item. Item evaluation per record stops at the first valid item.
func (f *Filter) Collect(ctx context.Context, src Source) (*reconcile.CatalogIndex, error) {
	index := &reconcile.CatalogIndex{Circulating: reconcile.NewSet()}
	var totals Totals

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		bib, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("collection aborted after %d records: %w", index.Records, err)
		}

		index.Records++
		if !f.HasValidItem(bib, &totals) {
			continue
		}
		if bib.Identifier == "" {
			return nil, &MissingIdentifierError{Position: bib.Position, Title: bib.Title}
		}
		index.Circulating.Add(bib.Identifier)
	}

	if totals.UnknownCodes > 0 {
		f.logger.Warn("Items with unknown status codes were excluded", zap.Int("count", totals.UnknownCodes))
	}
	return index, nil
}
