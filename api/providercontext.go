package api

// ProviderContext is the context passed to lookup functions that operate in-process
type ProviderContext interface {
	// Option returns the option for the given name together with a flag indicating
	// if the option exists
	Option(name string) (any, bool)

	// StringOption returns the string option for the given name. The flag is false
	// when the option is missing or is not a string
	StringOption(name string) (string, bool)

	// BoolOption returns the bool option for the given name. The flag is false
	// when the option is missing or is not a bool
	BoolOption(name string) (bool, bool)

	// IntOption returns the int option for the given name. The flag is false
	// when the option is missing or is not an int
	IntOption(name string) (int, bool)

	// OptionMap returns all options
	OptionMap() Options

	// Explain will add the message returned by the given function to the
	// lookup explainer. The method will only get called when the explanation
	// support is enabled
	Explain(messageProducer func() string)

	// Cache adds the given key - value association to the cache and returns the
	// value that was previously associated with the key, if any
	Cache(key string, value any) (any, bool)

	// CacheAll adds all key - value associations in the given map to the cache
	CacheAll(values map[string]any)

	// CachedValue returns the value for the given key together with
	// a boolean to indicate if the value was found or not
	CachedValue(key string) (any, bool)

	// CachedEntries calls the consumer with each association in the cache
	CachedEntries(consumer func(key string, value any))

	// Interpolate resolves interpolations in the given value and returns the result
	Interpolate(value any) any

	// Invocation returns the active invocation
	Invocation() Invocation
}
