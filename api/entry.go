package api

// An Entry is a definition of an entry in the hierarchy.
type Entry interface {
	// Copy creates a copy of this entry for the given Config
	Copy(Config) Entry

	// Options returns the entry options
	Options() Options

	// DataDir returns datadir
	DataDir() string

	// Function returns the data_hash or lookup_key function
	Function() Function

	// Name returns the name
	Name() string

	// Resolve resolves this entry on behalf of the given invocation and defaults entry
	Resolve(ic Invocation, defaults Entry) Entry

	// Locations returns the paths or globs. The method returns nil if no locations are defined
	Locations() []Location
}
