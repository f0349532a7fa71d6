package reconcile

// CatalogIndex is what a catalog pass yields: how many bib records were
// examined and which of them hold at least one circulating item.
type CatalogIndex struct {
	// Records is the number of bib records examined.
	Records int

	// Circulating holds the identifiers of records with a valid item.
	Circulating Set
}

// Summary provides aggregate counts for a reconciliation.
type Summary struct {
	// TotalRecords is the number of catalog bib records examined.
	TotalRecords int `json:"total_records"`

	// CirculatingRecords counts catalog records with at least one valid item.
	CirculatingRecords int `json:"circulating_records"`

	// ExternalRecords is the size of the external inventory set.
	ExternalRecords int `json:"external_records"`

	// Weeded counts identifiers in the external set but not the catalog set.
	Weeded int `json:"weeded"`

	// Added counts identifiers in the catalog set but not the external set.
	Added int `json:"added"`
}

// Report is the outcome of comparing the catalog against an external listing.
type Report struct {
	// Adapter names the catalog source that produced the report.
	Adapter string `json:"adapter"`

	// Weeded lists identifiers removed from circulation since the external snapshot.
	Weeded []string `json:"weeded"`

	// Added lists circulating identifiers the external snapshot does not know.
	Added []string `json:"added"`

	Summary Summary `json:"summary"`
}
