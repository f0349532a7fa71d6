package circulation

// Subfield codes of a Koha 952 item field.
const (
	CheckedOut byte = 'q'
	NotForLoan byte = '7'
	Damaged    byte = '4'
	Lost       byte = '1'
	Withdrawn  byte = '0'
	Location   byte = 'c'
	ItemType   byte = 'y'
)

const (
	zeroCode       = "0"
	labelOnLoan    = "checked out"
	labelDamaged   = "damaged"
	labelWithdrawn = "withdrawn"
)

// Item holds the subfield values of one holding, keyed by subfield code.
// A missing key and an empty value both mean the subfield is absent.
type Item map[byte]string

// Get returns the value for code and whether it is present.
func (i Item) Get(code byte) (string, bool) {
	v := i[code]
	return v, v != ""
}

// isSet reports whether code is present and not the zero code.
func (i Item) isSet(code byte) bool {
	v, ok := i.Get(code)
	return ok && v != zeroCode
}
