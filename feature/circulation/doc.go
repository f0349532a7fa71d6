// Package circulation classifies Koha item records as circulating holdings.
//
// It holds the institution's status policy as data: the LOST and NOT_LOAN
// authorised value tables and the allow-lists of shelving locations and item
// types. Classify applies that policy to one item (a 952 field) and returns a
// Verdict with the validity decision and human readable status labels.
//
// # Policy
//
//   - q (onloan): labelled "checked out"; does not affect validity.
//   - 7 (notforloan), 4 (damaged), 1 (itemlost), 0 (withdrawn): any value other
//     than "0" makes the item invalid and adds a label.
//   - c (location) and y (itype) must be in their allow-lists.
//
// Codes outside the tables make the item invalid and are reported in
// Verdict.Unknown so callers can warn about data drift.
package circulation
