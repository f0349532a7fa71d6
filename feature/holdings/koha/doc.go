// Package koha reads bib records and their items straight from a Koha
// database, as an alternative to a MARC export when building the catalog
// side of a reconciliation.
package koha
