package api

// An Invocation keeps track of one specific resolution on behalf of a client and
// implements a guard against endless recursion
type Invocation interface {
	Session

	// Client returns the client on whose behalf values are resolved, or nil when the
	// invocation has no requester identity
	Client() Client

	// CallOptions returns the options that were given to the Lookup call currently in
	// progress. The map is empty when no call is in progress or no options were given.
	CallOptions() Options

	// Config returns the configuration appointed by the given configPath. The path given
	// in the ProvideConfig session option is used when configPath is empty.
	Config(configPath string) ResolvedConfig

	// DoWithScope associates the given scope with this invocation and calls the given
	// doer function. The scope is then restored to what it was before the call.
	DoWithScope(scope Scope, doer func())

	// DoRedacted calls doer and, while it is executing, doesn't reveal any found
	// values in logs or explanations
	DoRedacted(doer func())

	// Interpolate resolves interpolations in the given value and returns the result
	Interpolate(value any, allowMethods bool) any

	// InterpolateString resolves a string containing interpolation expressions. The
	// bool is false when the string contained no expressions
	InterpolateString(str string, allowMethods bool) (any, bool)

	// Lookup resolves the given request using the top provider of the session and the
	// given call options
	Lookup(req Request, options Options) (any, bool)

	// MergeHierarchy merges the result of resolving the given request using each of
	// the given data providers
	MergeHierarchy(req Request, providers []DataProvider, merge MergeStrategy) (any, bool)

	// MergeLocations merges the result of resolving the given request on all locations
	// (or without location) for the given provider and merge strategy
	MergeLocations(req Request, provider DataProvider, merge MergeStrategy) (any, bool)

	// ProviderContext returns a new provider context for this invocation configured
	// with the given options
	ProviderContext(options Options) ProviderContext

	// ReportText will add the message returned by the given function to the
	// lookup explainer. The method will only get called when the explanation
	// support is enabled
	ReportText(messageProducer func() string)

	// ReportLocationNotFound reports that the current location wasn't found
	ReportLocationNotFound()

	// ReportFound reports that the given value was found using the given key
	ReportFound(key any, value any)

	// ReportMergeResult reports the result of the current merge operation
	ReportMergeResult(value any)

	// ReportMergeSource reports the source of the current merge options
	ReportMergeSource(source string)

	// ReportNotFound reports that the given key was not found
	ReportNotFound(key any)

	// WithDataProvider pushes the given provider to the explanation stack and calls the
	// producer, then pops the provider again before returning.
	WithDataProvider(pvd DataProvider, f Producer) (any, bool)

	// WithInterpolation pushes the given expression to the explanation stack and calls the
	// producer, then pops the expression again before returning.
	WithInterpolation(expr string, f Producer) (any, bool)

	// WithLocation pushes the given location to the explanation stack and calls the
	// producer, then pops the location again before returning.
	WithLocation(loc Location, f Producer) (any, bool)

	// WithLookup pushes the given request to the explanation stack and calls the
	// producer, then pops the request again before returning.
	WithLookup(req Request, f Producer) (any, bool)

	// WithMerge pushes the given strategy to the explanation stack and calls the
	// producer, then pops the strategy again before returning.
	WithMerge(ms MergeStrategy, f Producer) (any, bool)

	// WithSegment pushes the given segment to the explanation stack and calls the
	// producer, then pops the segment again before returning.
	WithSegment(seg any, f Producer) (any, bool)

	// WithSubLookup pushes the given name to the explanation stack and calls the
	// producer, then pops the name again before returning.
	WithSubLookup(name Name, f Producer) (any, bool)

	// WithRequest guards against endless recursion. It panics when the given request
	// is already in progress and otherwise calls the producer.
	WithRequest(req Request, f Producer) (any, bool)

	// ExplainMode returns true if explain support is active
	ExplainMode() bool

	// ForConfig returns an Invocation without explain support
	ForConfig() Invocation

	// SetMergeStrategy sets the current merge strategy for the invocation from the
	// given `merge` call option and hierarchy entry options
	SetMergeStrategy(mergeOption any, entryOptions Options)

	// MergeStrategy returns the current merge strategy
	MergeStrategy() MergeStrategy
}
