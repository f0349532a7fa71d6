package reconcile

import "context"

// Adapter defines how the two sides of a reconciliation are loaded.
// Implementations decide where the catalog records come from (a MARC export,
// the Koha database) and where the external listing lives.
type Adapter interface {
	// Name returns the unique name of this adapter (e.g., "marc", "koha-db").
	Name() string

	// LoadExternalSet loads the external inventory identifiers. It runs
	// before the catalog pass so configuration errors (such as a missing
	// identifier column) surface before any record is read.
	LoadExternalSet(ctx context.Context) (Set, error)

	// LoadCatalogIndex runs one pass over the catalog and returns the number
	// of records seen and the identifiers of circulating records.
	LoadCatalogIndex(ctx context.Context) (*CatalogIndex, error)
}
