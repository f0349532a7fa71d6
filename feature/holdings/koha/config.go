package koha

// Config selects which Koha tables the database source reads.
type Config struct {
	// Profile names the table mapping (current, deleted).
	Profile string `mapstructure:"profile" default:"current"`
}

const (
	ProfileCurrent = "current"
	ProfileDeleted = "deleted"
)

// IsValidProfile checks if the configured profile is known.
func (c Config) IsValidProfile() bool {
	switch c.Profile {
	case ProfileCurrent, ProfileDeleted:
		return true
	default:
		return false
	}
}
