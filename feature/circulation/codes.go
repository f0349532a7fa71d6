package circulation

// Koha authorised values, see admin/authorised_values.pl?searchfield=LOST.
// "6" (Claims Returned) was added to the catalog after the first export policy;
// both generations of the table are covered by this superset.
var lostCodes = map[string]string{
	"0": "",
	"1": "Lost",
	"2": "Long Overdue (Lost)",
	"3": "Lost and Paid For",
	"4": "Missing",
	"5": "Lost (On Search)",
	"6": "Claims Returned",
}

// Koha authorised values, searchfield=NOT_LOAN.
var notForLoanCodes = map[string]string{
	"-3": "Repair",
	"-2": "In Processing",
	"-1": "Ordered",
	"0":  "",
	"1":  "Library Use Only",
	"2":  "Staff Collection",
	"3":  "Bindery",
	"4":  "By Appointment",
	"5":  "On display",
}

// Shelving locations (searchfield=LOC) whose items circulate.
var validLocations = map[string]struct{}{
	"CART":    {},
	"FACDEV":  {},
	"MAIN":    {},
	"NEWBOOK": {},
	"DISPLAY": {},
}

// Item types (admin/itemtypes.pl) that count as circulating holdings.
var validTypes = map[string]struct{}{
	"BOOK":  {},
	"SUPPL": {},
}

// LostLabel returns the label for a lost code. ok is false for codes outside the table.
func LostLabel(code string) (label string, ok bool) {
	label, ok = lostCodes[code]
	return label, ok
}

// NotForLoanLabel returns the label for a not-for-loan code. ok is false for codes outside the table.
func NotForLoanLabel(code string) (label string, ok bool) {
	label, ok = notForLoanCodes[code]
	return label, ok
}

// IsValidLocation reports whether code is an allowed shelving location.
func IsValidLocation(code string) bool {
	_, ok := validLocations[code]
	return ok
}

// IsValidType reports whether code is an allowed item type.
func IsValidType(code string) bool {
	_, ok := validTypes[code]
	return ok
}
