package api

// MergeStrategy is responsible for merging or prioritizing the result of several lookups into one.
type MergeStrategy interface {
	// Label returns a short descriptive label of this strategy.
	Label() string

	// Name returns the name of this strategy
	Name() string

	// MergeLookup performs a series of lookups for each variant found in the given variants
	// slice. The actual lookup value is produced by the given value function which will be
	// called at least once. The argument to the value function will be an element of the
	// variants slice.
	MergeLookup(variants any, ic Invocation, value func(variant any) (any, bool)) (any, bool)

	// Options returns the options for this strategy or an empty map if the strategy has no options
	Options() Options
}
