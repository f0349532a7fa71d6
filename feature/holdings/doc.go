// Package holdings applies the circulation policy to whole bibliographic
// records.
//
// A Filter runs in one of two modes over a Source of Bibs:
//
//   - Export copies every record holding at least one valid item to a Sink,
//     byte for byte. A nil Sink makes it a counting pass.
//   - Collect gathers the identifiers of those records for reconciliation
//     against an external listing.
//
// MARCSource and MARCSink adapt core/marc streams; the koha subpackage reads
// the same records straight from the Koha database.
package holdings
