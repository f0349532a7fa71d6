package inventory

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"sharedprint/core/reconcile"
	"sharedprint/core/storage"
)

// ErrMissingColumn is returned when the listing header lacks the identifier column.
var ErrMissingColumn = errors.New("identifier column not found in listing header")

const bom = "\uFEFF"

// Load reads a listing with a header row and returns the set of values in the
// configured identifier column. Values are taken verbatim.
func Load(r io.Reader, cfg Config) (reconcile.Set, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true
	if cfg.Delimiter != "" {
		d, size := utf8.DecodeRuneInString(cfg.Delimiter)
		if size != len(cfg.Delimiter) {
			return nil, fmt.Errorf("delimiter must be a single character, got %q", cfg.Delimiter)
		}
		cr.Comma = d
	}

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: %q (listing is empty)", ErrMissingColumn, cfg.IDColumn)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read listing header: %w", err)
	}

	column := -1
	for i, name := range header {
		if i == 0 {
			// Spreadsheet exports often start with a byte order mark.
			name = strings.TrimPrefix(name, bom)
		}
		if name == cfg.IDColumn {
			column = i
			break
		}
	}
	if column < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, cfg.IDColumn)
	}

	ids := reconcile.NewSet()
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read listing: %w", err)
		}
		if column >= len(row) {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("listing line %d has no %q value", line, cfg.IDColumn)
		}
		ids.Add(row[column])
	}

	return ids, nil
}

// LoadFile opens path (local or s3://) and loads it with Load.
func LoadFile(ctx context.Context, client storage.Client, path string, cfg Config) (reconcile.Set, error) {
	rc, err := storage.Open(ctx, client, path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	ids, err := Load(rc, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ids, nil
}
