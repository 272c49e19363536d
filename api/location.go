package api

// LocationKind describes the kind of location that is used in a hierarchy entry.
type LocationKind string

// LcPath indicates that the location is a path in a file system
const LcPath = LocationKind(`path`)

// LcGlob indicates that the location is a glob
const LcGlob = LocationKind(`glob`)

// Location represents a location in a hierarchy entry in the form of a path or a glob.
type Location interface {
	Kind() LocationKind
	Exists() bool
	Resolve(ic Invocation, dataDir string) []Location
	Original() string
	Resolved() string
}
