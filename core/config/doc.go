// Package config provides configuration management for sharedprint.
//
// Values come from a .env file and the environment, with defaults declared
// on each section's struct tags. Nested keys map to upper-case variables
// joined by underscores, so catalog.item_tag is read from CATALOG_ITEM_TAG.
//
// # Configuration Structure
//
//   - Log: level and encoding
//   - Catalog: MARC tags for items and the bib identifier, default export path
//   - Inventory: GreenGlass identifier column and delimiter
//   - Koha: table profile for the database source
//   - Storage: S3/MinIO credentials for s3:// paths
//   - Database: Koha connection details
//
// Command-line flags override the loaded values.
package config
