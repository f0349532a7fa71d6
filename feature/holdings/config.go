package holdings

// Config locates holdings data inside a MARC record.
type Config struct {
	// ItemTag is the repeatable field holding one item each (Koha: 952).
	ItemTag string `mapstructure:"item_tag" default:"952"`
	// IDTag and IDSubfield locate the bib record number (Koha: 999$c).
	IDTag      string `mapstructure:"id_tag" default:"999"`
	IDSubfield string `mapstructure:"id_subfield" default:"c"`
	// Output is the default path of the filtered export.
	Output string `mapstructure:"output" default:"out.mrc"`
}

// DefaultConfig returns the Koha layout.
func DefaultConfig() Config {
	return Config{ItemTag: "952", IDTag: "999", IDSubfield: "c", Output: "out.mrc"}
}

func (c Config) idCode() byte {
	if c.IDSubfield == "" {
		return 'c'
	}
	return c.IDSubfield[0]
}
