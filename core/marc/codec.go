package marc

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// ErrMalformed is wrapped by every framing error the Reader reports.
var ErrMalformed = errors.New("malformed MARC record")

// ParseError describes where in the stream a record could not be decoded.
type ParseError struct {
	// Position is the 1-based ordinal of the offending record.
	Position int
	// Offset is the byte offset at which the record starts.
	Offset int64
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: record %d at byte %d: %s", ErrMalformed, e.Position, e.Offset, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return ErrMalformed
}

// Reader decodes ISO 2709 records one at a time.
type Reader struct {
	br     *bufio.Reader
	count  int
	offset int64
}

// NewReader returns a Reader reading from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// Count returns the number of records decoded so far.
func (r *Reader) Count() int {
	return r.count
}

// Next decodes the next record. It returns io.EOF once the stream is exhausted
// at a record boundary.
func (r *Reader) Next() (*Record, error) {
	position := r.count + 1
	start := r.offset
	fail := func(format string, args ...any) error {
		return &ParseError{Position: position, Offset: start, Reason: fmt.Sprintf(format, args...)}
	}

	head := make([]byte, 5)
	n, err := io.ReadFull(r.br, head)
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, fail("truncated record length (%d bytes)", n)
	}

	length, ok := number(head)
	if !ok || length < leaderLength+2 {
		return nil, fail("invalid record length %q", head)
	}

	raw := make([]byte, length)
	copy(raw, head)
	if n, err := io.ReadFull(r.br, raw[5:]); err != nil {
		return nil, fail("truncated record: want %d bytes, got %d", length, n+5)
	}
	r.offset += int64(length)

	rec, err := decode(raw)
	if err != nil {
		return nil, fail("%v", err)
	}
	r.count++
	return rec, nil
}

func decode(raw []byte) (*Record, error) {
	if raw[len(raw)-1] != recordTerminator {
		return nil, errors.New("missing record terminator")
	}

	leader := string(raw[:leaderLength])
	base, ok := number(raw[12:17])
	if !ok || base <= leaderLength || base > len(raw) {
		return nil, fmt.Errorf("invalid base address %q", leader[12:17])
	}
	if raw[base-1] != fieldTerminator {
		return nil, errors.New("missing directory terminator")
	}

	directory := raw[leaderLength : base-1]
	if len(directory)%directoryEntry != 0 {
		return nil, fmt.Errorf("directory length %d is not a multiple of %d", len(directory), directoryEntry)
	}

	rec := &Record{Leader: leader, Raw: raw}
	for i := 0; i < len(directory); i += directoryEntry {
		entry := directory[i : i+directoryEntry]
		tag := string(entry[:3])
		flen, ok1 := number(entry[3:7])
		fstart, ok2 := number(entry[7:12])
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("invalid directory entry %q", entry)
		}

		begin := base + fstart
		end := begin + flen
		if flen < 1 || begin < base || end > len(raw)-1 {
			return nil, fmt.Errorf("field %s out of bounds", tag)
		}
		data := bytes.TrimSuffix(raw[begin:end], []byte{fieldTerminator})

		rec.Fields = append(rec.Fields, decodeField(tag, data))
	}
	return rec, nil
}

// number parses an unsigned fixed-width decimal field.
func number(b []byte) (int, bool) {
	if len(b) == 0 {
		return 0, false
	}
	n := 0
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

func decodeField(tag string, data []byte) Field {
	f := Field{Tag: tag}
	if f.IsControl() {
		f.Data = string(data)
		return f
	}

	parts := bytes.Split(data, []byte{subfieldDelim})
	if ind := parts[0]; len(ind) >= 2 {
		f.Indicators = [2]byte{ind[0], ind[1]}
	} else {
		f.Indicators = [2]byte{' ', ' '}
	}
	for _, p := range parts[1:] {
		if len(p) == 0 {
			continue
		}
		f.Subfields = append(f.Subfields, Subfield{Code: p[0], Value: string(p[1:])})
	}
	return f
}

// Encode serialises r in ISO 2709 form, recomputing the directory, the record
// length and the base address. Raw is ignored.
func Encode(r *Record) []byte {
	var directory, data bytes.Buffer
	for _, f := range r.Fields {
		start := data.Len()
		if f.IsControl() {
			data.WriteString(f.Data)
		} else {
			ind := f.Indicators
			if ind[0] == 0 {
				ind[0] = ' '
			}
			if ind[1] == 0 {
				ind[1] = ' '
			}
			data.Write(ind[:])
			for _, sf := range f.Subfields {
				data.WriteByte(subfieldDelim)
				data.WriteByte(sf.Code)
				data.WriteString(sf.Value)
			}
		}
		data.WriteByte(fieldTerminator)
		fmt.Fprintf(&directory, "%3.3s%04d%05d", f.Tag, data.Len()-start, start)
	}
	directory.WriteByte(fieldTerminator)

	base := leaderLength + directory.Len()
	length := base + data.Len() + 1

	leader := []byte(defaultLeader)
	if len(r.Leader) == leaderLength {
		leader = []byte(r.Leader)
	}
	copy(leader[0:5], fmt.Sprintf("%05d", length))
	copy(leader[12:17], fmt.Sprintf("%05d", base))

	out := make([]byte, 0, length)
	out = append(out, leader...)
	out = append(out, directory.Bytes()...)
	out = append(out, data.Bytes()...)
	out = append(out, recordTerminator)
	return out
}

// Writer writes records to an underlying stream.
type Writer struct {
	w     io.Writer
	count int
}

// NewWriter returns a Writer writing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write writes rec's transmission bytes; decoded records are copied verbatim.
func (w *Writer) Write(rec *Record) error {
	if _, err := w.w.Write(rec.Bytes()); err != nil {
		return fmt.Errorf("failed to write record %d: %w", w.count+1, err)
	}
	w.count++
	return nil
}

// Count returns the number of records written.
func (w *Writer) Count() int {
	return w.count
}
