package reconcile

import (
	"context"
	"fmt"
)

// Reconcile loads both sides through the adapter and compares them.
func Reconcile(ctx context.Context, adapter Adapter) (*Report, error) {
	external, err := adapter.LoadExternalSet(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load external listing: %w", err)
	}

	catalog, err := adapter.LoadCatalogIndex(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	report := Compare(catalog, external)
	report.Adapter = adapter.Name()
	return report, nil
}

// Compare computes the added and weeded identifiers. Neither input is modified.
func Compare(catalog *CatalogIndex, external Set) *Report {
	circulating := catalog.Circulating
	if circulating == nil {
		circulating = Set{}
	}
	if external == nil {
		external = Set{}
	}

	weeded := external.Difference(circulating)
	added := circulating.Difference(external)

	return &Report{
		Weeded: weeded.Sorted(),
		Added:  added.Sorted(),
		Summary: Summary{
			TotalRecords:       catalog.Records,
			CirculatingRecords: circulating.Len(),
			ExternalRecords:    external.Len(),
			Weeded:             weeded.Len(),
			Added:              added.Len(),
		},
	}
}
