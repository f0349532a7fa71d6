package circulation

import "fmt"

// UnknownCode records a status value that is not in the code tables.
type UnknownCode struct {
	// Field is the subfield code, e.g. '1' for lost.
	Field byte
	Code  string
}

func (u UnknownCode) String() string {
	return fmt.Sprintf("%c=%s", u.Field, u.Code)
}

// Verdict is the result of classifying one item.
type Verdict struct {
	// Valid is true when the item is a circulating holding.
	Valid bool
	// Labels are human readable statuses in evaluation order.
	Labels []string
	// Unknown lists status codes outside the code tables; each made the item invalid.
	Unknown []UnknownCode
}

// Classify decides whether item is a valid circulating holding.
//
// Validity is the conjunction of independent checks: not-for-loan, damaged,
// lost and withdrawn must be absent or "0", and the location and item type
// must be in their allow-lists. Being checked out is reported but does not
// affect validity.
func Classify(item Item) Verdict {
	v := Verdict{Valid: true}

	// onloan holds a due date while the item is checked out
	if item.isSet(CheckedOut) {
		v.Labels = append(v.Labels, labelOnLoan)
	}

	if item.isSet(NotForLoan) {
		code := item[NotForLoan]
		label, ok := NotForLoanLabel(code)
		if !ok {
			label = fmt.Sprintf("unknown not-for-loan code %s", code)
			v.Unknown = append(v.Unknown, UnknownCode{Field: NotForLoan, Code: code})
		}
		v.Labels = append(v.Labels, label)
		v.Valid = false
	}

	if item.isSet(Damaged) {
		v.Labels = append(v.Labels, labelDamaged)
		v.Valid = false
	}

	if item.isSet(Lost) {
		code := item[Lost]
		label, ok := LostLabel(code)
		if !ok {
			label = fmt.Sprintf("unknown lost code %s", code)
			v.Unknown = append(v.Unknown, UnknownCode{Field: Lost, Code: code})
		}
		v.Labels = append(v.Labels, label)
		v.Valid = false
	}

	if item.isSet(Withdrawn) {
		v.Labels = append(v.Labels, labelWithdrawn)
		v.Valid = false
	}

	if !IsValidLocation(item[Location]) {
		v.Valid = false
	}

	if !IsValidType(item[ItemType]) {
		v.Valid = false
	}

	return v
}

// IsValid is shorthand for Classify(item).Valid.
func IsValid(item Item) bool {
	return Classify(item).Valid
}
