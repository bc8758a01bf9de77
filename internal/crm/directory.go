package crm

// UnknownCompany is used when the directory has no entry for a name.
const UnknownCompany = "Unknown Company"

// Profile is the company/role pair a directory resolves a name to.
type Profile struct {
	Company string
	Role    string
}

// Directory resolves a customer name to company and role. Lookups are by
// exact name match. Implementations must be safe for concurrent reads.
type Directory interface {
	Lookup(name string) (Profile, bool)
}

// StaticDirectory is an in-memory Directory keyed on exact customer name.
// It is normally populated from the config file's directory entries.
type StaticDirectory map[string]Profile

// Lookup implements Directory.
func (d StaticDirectory) Lookup(name string) (Profile, bool) {
	p, ok := d[name]
	return p, ok
}

// resolveProfile applies the unknown-company fallback for names the
// directory does not know.
func resolveProfile(dir Directory, name string) Profile {
	if dir != nil {
		if p, ok := dir.Lookup(name); ok {
			return p
		}
	}
	return Profile{Company: UnknownCompany}
}
