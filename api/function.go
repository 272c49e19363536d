package api

// FunctionKind denotes what kind of function this is.
type FunctionKind string

// KindDataHash is the function kind for data_hash functions
const KindDataHash = FunctionKind(`data_hash`)

// KindLookupKey is the function kind for lookup_key functions
const KindLookupKey = FunctionKind(`lookup_key`)

// A Function is a definition of a configured lookup function, i.e. a data_hash or a lookup_key.
type Function interface {
	// Kind returns the function kind
	Kind() FunctionKind

	// Name returns the name of the function
	Name() string

	// Resolve resolves the function on behalf of the given invocation
	Resolve(ic Invocation) (Function, bool)
}

// A DataHash function produces the full hash of names to values for one location
// of a hierarchy entry
type DataHash func(pc ProviderContext) map[string]any

// A LookupKey function produces the value for one root name at one location of a
// hierarchy entry
type LookupKey func(pc ProviderContext, name string) (any, bool)
