// Package reconcile compares the circulating holdings of the catalog against
// an external inventory snapshot (the GreenGlass listing used by the Shared
// Print program).
//
// Both sides are reduced to sets of bib record identifiers:
//
//   - Weeded: identifiers in the external set but not in the catalog's
//     circulating set, i.e. holdings removed since the snapshot.
//   - Added: identifiers in the catalog's circulating set but not in the
//     external set, i.e. holdings acquired since the snapshot.
//
// # Architecture
//
// 1. Set: a plain identifier set with difference and deterministic ordering.
//
// 2. Adapter: loads the external set and runs the catalog pass. The external
// set is always loaded first so that a misconfigured listing fails before a
// long catalog scan starts.
//
// 3. Engine: Reconcile drives an adapter; Compare is the pure set algebra and
// never mutates its inputs.
//
// # Usage Example
//
//	report, err := reconcile.Reconcile(ctx, adapter)
//	fmt.Printf("Weeded: %d Added: %d\n", report.Summary.Weeded, report.Summary.Added)
package reconcile
