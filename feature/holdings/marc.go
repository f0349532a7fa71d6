package holdings

import (
	"context"
	"fmt"
	"io"

	"sharedprint/core/marc"
	"sharedprint/core/storage"
	"sharedprint/feature/circulation"
)

// MARCSource reads Bibs from an ISO 2709 stream.
type MARCSource struct {
	reader *marc.Reader
	closer io.Closer
	cfg    Config
}

// NewMARCSource reads records from r. If r is an io.Closer, Close closes it.
func NewMARCSource(r io.Reader, cfg Config) *MARCSource {
	s := &MARCSource{reader: marc.NewReader(r), cfg: cfg}
	if c, ok := r.(io.Closer); ok {
		s.closer = c
	}
	return s
}

// OpenMARC opens path (local or s3://) as a MARCSource.
func OpenMARC(ctx context.Context, client storage.Client, path string, cfg Config) (*MARCSource, error) {
	rc, err := storage.Open(ctx, client, path)
	if err != nil {
		return nil, err
	}
	return NewMARCSource(rc, cfg), nil
}

// Next decodes the next record.
func (s *MARCSource) Next() (*Bib, error) {
	rec, err := s.reader.Next()
	if err != nil {
		return nil, err
	}
	return BibFromRecord(rec, s.reader.Count(), s.cfg), nil
}

// Close releases the underlying stream.
func (s *MARCSource) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// BibFromRecord extracts the identifier, title and items of rec.
func BibFromRecord(rec *marc.Record, position int, cfg Config) *Bib {
	bib := &Bib{
		Position: position,
		Title:    rec.Title(),
		Raw:      rec.Raw,
	}
	if bib.Raw == nil {
		bib.Raw = marc.Encode(rec)
	}

	// Only the first occurrence of the identifier field is consulted.
	if fields := rec.FieldsWithTag(cfg.IDTag); len(fields) > 0 {
		bib.Identifier, _ = fields[0].Subfield(cfg.idCode())
	}

	for _, f := range rec.FieldsWithTag(cfg.ItemTag) {
		item := make(circulation.Item, len(f.Subfields))
		for _, sf := range f.Subfields {
			if _, seen := item[sf.Code]; !seen {
				item[sf.Code] = sf.Value
			}
		}
		bib.Items = append(bib.Items, item)
	}
	return bib
}

// MARCSink writes retained records verbatim.
type MARCSink struct {
	writer *marc.Writer
	closer io.Closer
}

// NewMARCSink writes to w. If w is an io.Closer, Close closes it.
func NewMARCSink(w io.Writer) *MARCSink {
	s := &MARCSink{writer: marc.NewWriter(w)}
	if c, ok := w.(io.Closer); ok {
		s.closer = c
	}
	return s
}

// CreateMARC creates path (local or s3://) as a MARCSink.
func CreateMARC(ctx context.Context, client storage.Client, path string) (*MARCSink, error) {
	wc, err := storage.Create(ctx, client, path)
	if err != nil {
		return nil, err
	}
	return NewMARCSink(wc), nil
}

// Write copies the record's container bytes.
func (s *MARCSink) Write(bib *Bib) error {
	if bib.Raw == nil {
		return fmt.Errorf("record %d: %w", bib.Position, ErrNotExportable)
	}
	return s.writer.Write(&marc.Record{Raw: bib.Raw})
}

// Count returns the number of records written.
func (s *MARCSink) Count() int {
	return s.writer.Count()
}

// Abort discards everything written when the destination supports it, then
// releases it.
func (s *MARCSink) Abort() error {
	if a, ok := s.closer.(interface{ Abort() error }); ok {
		return a.Abort()
	}
	return s.Close()
}

// Close flushes and releases the destination.
func (s *MARCSink) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
