package marc

import "strings"

const (
	leaderLength     = 24
	directoryEntry   = 12
	fieldTerminator  = 0x1E
	recordTerminator = 0x1D
	subfieldDelim    = 0x1F
)

// defaultLeader is used when a record built in memory carries no leader.
const defaultLeader = "00000nam a2200000 a 4500"

// Subfield is one coded value inside a data field.
type Subfield struct {
	Code  byte
	Value string
}

// Field is either a control field (tags 001-009, Data set) or a data field
// (indicators plus subfields).
type Field struct {
	Tag        string
	Indicators [2]byte
	Subfields  []Subfield
	Data       string
}

// IsControl reports whether the field is a control field.
func (f Field) IsControl() bool {
	return strings.HasPrefix(f.Tag, "00")
}

// Subfield returns the first non-repeated value for code.
func (f Field) Subfield(code byte) (string, bool) {
	for _, sf := range f.Subfields {
		if sf.Code == code {
			return sf.Value, true
		}
	}
	return "", false
}

// Record is a decoded MARC record. Raw keeps the exact bytes it was decoded
// from so that writers can copy it unchanged.
type Record struct {
	Leader string
	Fields []Field
	Raw    []byte
}

// FieldsWithTag returns the fields carrying tag, in record order.
func (r *Record) FieldsWithTag(tag string) []Field {
	var out []Field
	for _, f := range r.Fields {
		if f.Tag == tag {
			out = append(out, f)
		}
	}
	return out
}

// Value returns the first tag$code value in the record.
func (r *Record) Value(tag string, code byte) (string, bool) {
	for _, f := range r.FieldsWithTag(tag) {
		if v, ok := f.Subfield(code); ok {
			return v, true
		}
	}
	return "", false
}

// Title returns 245$a followed by 245$b, or "" when the record has no title.
func (r *Record) Title() string {
	fields := r.FieldsWithTag("245")
	if len(fields) == 0 {
		return ""
	}
	a, _ := fields[0].Subfield('a')
	b, _ := fields[0].Subfield('b')
	return strings.TrimSpace(a + " " + b)
}

// Bytes returns the transmission form of the record: Raw when the record was
// decoded, otherwise a fresh encoding.
func (r *Record) Bytes() []byte {
	if r.Raw != nil {
		return r.Raw
	}
	return Encode(r)
}
