package koha

import "sharedprint/feature/circulation"

// Profile maps the Koha schema onto bib and item fields.
type Profile struct {
	// BiblioTable holds one row per bib record.
	BiblioTable string
	// ItemsTable holds one row per item, linked by ItemBiblioColumn.
	ItemsTable string

	BiblioIDColumn   string
	TitleColumn      string
	ItemIDColumn     string
	ItemBiblioColumn string

	// Subfields maps each 952 subfield code to its items column.
	Subfields []SubfieldColumn
}

// SubfieldColumn binds a 952 subfield code to an items column.
type SubfieldColumn struct {
	Code   byte
	Column string
}

// DefaultProfile returns the mapping of a stock Koha installation.
func DefaultProfile() Profile {
	return Profile{
		BiblioTable:      "biblio",
		ItemsTable:       "items",
		BiblioIDColumn:   "biblionumber",
		TitleColumn:      "title",
		ItemIDColumn:     "itemnumber",
		ItemBiblioColumn: "biblionumber",
		Subfields: []SubfieldColumn{
			{Code: circulation.CheckedOut, Column: "onloan"},
			{Code: circulation.NotForLoan, Column: "notforloan"},
			{Code: circulation.Damaged, Column: "damaged"},
			{Code: circulation.Lost, Column: "itemlost"},
			{Code: circulation.Withdrawn, Column: "withdrawn"},
			{Code: circulation.Location, Column: "location"},
			{Code: circulation.ItemType, Column: "itype"},
		},
	}
}

// DeletedProfile reads the tables Koha moves removed records into.
func DeletedProfile() Profile {
	p := DefaultProfile()
	p.BiblioTable = "deletedbiblio"
	p.ItemsTable = "deleteditems"
	return p
}

// GetProfileByName returns the profile for name, defaulting to DefaultProfile.
func GetProfileByName(name string) Profile {
	switch name {
	case ProfileDeleted:
		return DeletedProfile()
	default:
		return DefaultProfile()
	}
}

func (p Profile) biblioColumns() []string {
	return []string{p.BiblioIDColumn, p.TitleColumn}
}

func (p Profile) itemColumns() []string {
	cols := []string{p.ItemIDColumn, p.ItemBiblioColumn}
	for _, sc := range p.Subfields {
		cols = append(cols, sc.Column)
	}
	return cols
}
