package session

import (
	"github.com/lyraproj/provide/api"
)

type providerCtx struct {
	options    api.Options
	invocation api.Invocation
}

func (c *providerCtx) Option(name string) (any, bool) {
	v, ok := c.options[name]
	return v, ok
}

func (c *providerCtx) StringOption(name string) (string, bool) {
	if v, ok := c.options[name].(string); ok {
		return v, true
	}
	return ``, false
}

func (c *providerCtx) BoolOption(name string) (bool, bool) {
	if v, ok := c.options[name].(bool); ok {
		return v, true
	}
	return false, false
}

func (c *providerCtx) IntOption(name string) (int, bool) {
	if v, ok := c.options[name].(int); ok {
		return v, true
	}
	return 0, false
}

func (c *providerCtx) OptionMap() api.Options {
	if c.options == nil {
		return api.Options{}
	}
	return c.options
}

func (c *providerCtx) Interpolate(value any) any {
	return c.invocation.Interpolate(value, true)
}

func (c *providerCtx) Explain(messageProducer func() string) {
	c.invocation.ReportText(messageProducer)
}

func (c *providerCtx) Cache(key string, value any) (any, bool) {
	cache := c.invocation.TopProviderCache()
	if old, loaded := cache.LoadOrStore(key, value); loaded {
		// Replace the old value
		cache.Store(key, value)
		return old, true
	}
	return nil, false
}

func (c *providerCtx) CacheAll(values map[string]any) {
	cache := c.invocation.TopProviderCache()
	for k, v := range values {
		cache.Store(k, v)
	}
}

func (c *providerCtx) CachedValue(key string) (any, bool) {
	return c.invocation.TopProviderCache().Load(key)
}

func (c *providerCtx) CachedEntries(consumer func(key string, value any)) {
	c.invocation.TopProviderCache().Range(func(k, v any) bool {
		consumer(k.(string), v)
		return true
	})
}

func (c *providerCtx) Invocation() api.Invocation {
	return c.invocation
}
