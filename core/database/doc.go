// Package database handles connections to a Koha database and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL (Koha's production
// backend) or SQLite (a local snapshot) connections from the application's
// configuration.
//
// # Connect
//
// Connect opens and pings the database. Close releases it.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns let a source verify, before streaming any
// rows, that the tables it reads expose the columns it maps (e.g. items.itemlost).
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return err
//	}
//	defer database.Close(db)
package database
