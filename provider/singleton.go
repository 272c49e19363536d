package provider

import (
	"fmt"

	"github.com/lyraproj/provide/api"
)

type singletonProvider struct {
	delegate api.Provider
}

// Singleton returns a Provider that delegates to the given provider once per
// request and session and then serves the memoized value. Misses are not
// memoized. The memo is shared by all invocations of a session.
func Singleton(p api.Provider) api.Provider {
	return &singletonProvider{delegate: p}
}

func (s *singletonProvider) FullName() string {
	return fmt.Sprintf(`singleton of %s`, s.delegate.FullName())
}

func (s *singletonProvider) TryGetFor(req api.Request, ic api.Invocation) (any, bool) {
	ck := fmt.Sprintf(`singleton::%p::%s`, s, req)
	cache := ic.TopProviderCache()
	if v, ok := cache.Load(ck); ok {
		return v, true
	}
	v, ok := s.delegate.TryGetFor(req, ic)
	if !ok {
		return nil, false
	}
	if old, loaded := cache.LoadOrStore(ck, v); loaded {
		return old, true
	}
	return v, true
}
