package api

// A Provider produces values on behalf of requesting clients.
//
// A provider is allowed to have side effects such as lazy construction or caching, so
// two attempts with the same request are not guaranteed to produce the same value.
// Unless the concrete provider documents otherwise it must not be assumed safe for
// concurrent use
type Provider interface {
	// FullName returns a descriptive name of the provider. Used by the explainer
	FullName() string

	// TryGetFor attempts to produce the value described by req on behalf of the client
	// associated with the given invocation. The bool tells whether the attempt
	// succeeded. A successful attempt never carries a nil value. A provider that would
	// produce nil must report absence instead.
	//
	// Providers answer for the root of a named request. The remaining parts of the
	// name are dug out of the produced value by the caller
	TryGetFor(req Request, ic Invocation) (any, bool)
}

// A TypedProvider produces values of one statically known type
type TypedProvider[T any] interface {
	// TryGet attempts to produce the value. The bool tells whether the attempt succeeded
	TryGet(ic Invocation) (T, bool)
}

// CanProvide reports whether the given provider can currently produce the value
// described by req. The probe asks the provider for the value and discards the
// result, so the answer cannot disagree with an attempt made in the same state
func CanProvide(p Provider, req Request, ic Invocation) bool {
	_, ok := p.TryGetFor(req, ic)
	return ok
}

// A DataProvider performs a lookup using a lookup function configured in a
// hierarchy entry
type DataProvider interface {
	Provider

	// Hierarchy returns the entry where this provider was configured
	Hierarchy() Entry

	// TryGetAt performs a lookup of the given request at the given location. The
	// location is guaranteed to be one of the resolved locations derived from the
	// locations present in this providers hierarchy entry, or nil if no location
	// is present
	TryGetAt(req Request, ic Invocation, location Location) (any, bool)
}

// A Producer produces a value and a flag indicating if the production was a success
type Producer func() (any, bool)
