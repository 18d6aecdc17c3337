package cli

import "jth/internal/config"

// Flags holds command-line flags
type Flags struct {
	FixtureRoot string
	VMPath      string
	NameFilter  string
	Debug       bool
	Classes     bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		FixtureRoot: f.FixtureRoot,
		VMPath:      f.VMPath,
		NameFilter:  f.NameFilter,
		Debug:       f.Debug,
		Classes:     f.Classes,
	}
}
