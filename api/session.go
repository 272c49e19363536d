package api

import (
	"context"
	"sync"

	"github.com/hashicorp/go-hclog"
)

// A Session determines the life cycle of cached values during a provide session. A
// Session is safe for concurrent use. The invocations it creates are not.
type Session interface {
	context.Context

	// Invocation creates a new invocation for this session on behalf of the given
	// client. The client may be nil in which case values are resolved without a
	// requester identity. The scope may be nil, a Scope, or a map. A non nil scope
	// is nested inside the session scope.
	Invocation(client Client, scope any, explainer Explainer) Invocation

	// LoadFunction returns the custom lookup function that the given hierarchy entry
	// refers to together with a flag indicating if such a function exists. Custom
	// functions are registered using the ProvideFunctions session option.
	LoadFunction(he Entry) (any, bool)

	// Logger returns the session logger
	Logger() hclog.Logger

	// SessionOptions returns the session specific options
	SessionOptions() Options

	// Scope returns the session's scope
	Scope() Scope

	// SharedCache returns the cache that is shared by all invocations of this session
	SharedCache() *sync.Map

	// TopProvider returns the provider that defines the hierarchy
	TopProvider() Provider

	// TopProviderCache returns the shared provider cache used by all lookups
	TopProviderCache() *sync.Map

	// Get returns a session variable, or nil if no such variable exists. Session variables
	// are used internally by provide and should not be confused with Scope variables.
	Get(key string) any
}
