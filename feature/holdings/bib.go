package holdings

import (
	"errors"
	"io"

	"sharedprint/feature/circulation"
)

// ErrNotExportable is returned when a record without raw container bytes is
// written to an export sink.
var ErrNotExportable = errors.New("record has no container bytes to export")

// Bib is one bibliographic record with its embedded items.
type Bib struct {
	// Position is the 1-based ordinal of the record in its source.
	Position int
	// Identifier is the bib record number, empty when the record lacks it.
	Identifier string
	Title      string
	Items      []circulation.Item
	// Raw holds the record exactly as read; nil for sources that cannot
	// reproduce the container format.
	Raw []byte
}

// Source yields records in input order and returns io.EOF when exhausted.
type Source interface {
	Next() (*Bib, error)
}

// SourceCloser is a Source that holds a resource for the duration of a pass.
type SourceCloser interface {
	Source
	io.Closer
}

// Sink receives the records retained by an export.
type Sink interface {
	Write(bib *Bib) error
}
