// Package inventory loads the external inventory listing the catalog is
// reconciled against.
//
// The listing is a GreenGlass spreadsheet exported as CSV. Only one column
// matters: the bib record number (configurable, "Bib Record Number" by
// default). Rows are collapsed into a set, so duplicate rows count once.
// A header without that column is a configuration error reported as
// ErrMissingColumn.
package inventory
