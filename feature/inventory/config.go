package inventory

// Config holds settings for reading the GreenGlass inventory listing.
type Config struct {
	// IDColumn is the header of the column holding the bib record number.
	IDColumn string `mapstructure:"id_column" default:"Bib Record Number"`
	// Delimiter is the field separator of the listing.
	Delimiter string `mapstructure:"delimiter" default:","`
}
