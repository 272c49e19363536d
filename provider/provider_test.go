package provider_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/lyraproj/provide/api"
	"github.com/lyraproj/provide/provide"
	"github.com/lyraproj/provide/provider"
	"github.com/stretchr/testify/require"
)

type service struct {
	name string
}

func TestValue(t *testing.T) {
	provide.DoWithParent(context.Background(), provider.Value(42), nil, func(hs api.Session) {
		iv := hs.Invocation(nil, nil, nil)
		v, ok := provide.Get[int](iv)
		require.True(t, ok)
		require.Equal(t, 42, v)

		v, ok = provide.Lookup[int](iv, `anything`, nil)
		require.True(t, ok)
		require.Equal(t, 42, v)
	})
}

func TestValue_nil(t *testing.T) {
	provide.DoWithParent(context.Background(), provider.Value(nil), nil, func(hs api.Session) {
		_, ok := provide.Get[any](hs.Invocation(nil, nil, nil))
		require.False(t, ok)
	})
}

func TestTyped(t *testing.T) {
	tp := provider.Typed(func(ic api.Invocation) (*service, bool) {
		return &service{name: `svc`}, true
	})
	require.Equal(t, `typed provider for *provider_test.service`, tp.FullName())
	provide.DoWithParent(context.Background(), tp, nil, func(hs api.Session) {
		iv := hs.Invocation(nil, nil, nil)
		s, ok := provide.Get[*service](iv)
		require.True(t, ok)
		require.Equal(t, `svc`, s.name)

		_, ok = provide.Get[int](iv)
		require.False(t, ok)
	})
}

func TestTyped_miss(t *testing.T) {
	tp := provider.Typed(func(ic api.Invocation) (*service, bool) {
		return nil, false
	})
	provide.DoWithParent(context.Background(), tp, nil, func(hs api.Session) {
		_, ok := provide.Get[*service](hs.Invocation(nil, nil, nil))
		require.False(t, ok)
	})
}

type fixedService struct {
	s *service
}

func (f *fixedService) TryGet(ic api.Invocation) (*service, bool) {
	return f.s, true
}

func TestFromTyped(t *testing.T) {
	tp := provider.FromTyped[*service](&fixedService{s: &service{name: `fixed`}})
	provide.DoWithParent(context.Background(), tp, nil, func(hs api.Session) {
		s, ok := provide.Get[*service](hs.Invocation(nil, nil, nil))
		require.True(t, ok)
		require.Equal(t, `fixed`, s.name)
	})
}

func TestFunc(t *testing.T) {
	calls := 0
	fp := provider.Func(`counter`, func(req api.Request, ic api.Invocation) (any, bool) {
		if req.Name() != nil && req.Name().Root() == `nothing` {
			return nil, false
		}
		calls++
		return calls, true
	})
	require.Equal(t, `counter`, fp.FullName())
	provide.DoWithParent(context.Background(), fp, nil, func(hs api.Session) {
		iv := hs.Invocation(nil, nil, nil)
		v, ok := provide.Lookup[int](iv, `a`, nil)
		require.True(t, ok)
		require.Equal(t, 1, v)

		_, ok = provide.Lookup[int](iv, `nothing`, nil)
		require.False(t, ok)
	})
}

func TestSingleton(t *testing.T) {
	calls := 0
	sp := provider.Singleton(provider.Func(`counting`, func(req api.Request, ic api.Invocation) (any, bool) {
		calls++
		return fmt.Sprintf(`%s #%d`, req.Name().Root(), calls), true
	}))
	provide.DoWithParent(context.Background(), sp, nil, func(hs api.Session) {
		iv := hs.Invocation(nil, nil, nil)
		require.Equal(t, `a #1`, provide.LookupOr(iv, `a`, ``, nil))
		require.Equal(t, `a #1`, provide.LookupOr(iv, `a`, ``, nil))
		require.Equal(t, `b #2`, provide.LookupOr(iv, `b`, ``, nil))

		// the memo is shared by all invocations of the session
		iv2 := hs.Invocation(nil, nil, nil)
		require.Equal(t, `a #1`, provide.LookupOr(iv2, `a`, ``, nil))
	})
}

func TestSingleton_missNotMemoized(t *testing.T) {
	attempts := 0
	sp := provider.Singleton(provider.Func(`flaky`, func(req api.Request, ic api.Invocation) (any, bool) {
		attempts++
		if attempts == 1 {
			return nil, false
		}
		return `now found`, true
	}))
	provide.DoWithParent(context.Background(), sp, nil, func(hs api.Session) {
		iv := hs.Invocation(nil, nil, nil)
		_, ok := provide.Lookup[string](iv, `a`, nil)
		require.False(t, ok)

		v, ok := provide.Lookup[string](iv, `a`, nil)
		require.True(t, ok)
		require.Equal(t, `now found`, v)
	})
}

func TestMux(t *testing.T) {
	first := provider.FromDataHash(`first`, func(pc api.ProviderContext) map[string]any {
		return map[string]any{`a`: `first a`, `hash`: map[string]any{`x`: 1}}
	}, nil)
	second := provider.FromDataHash(`second`, func(pc api.ProviderContext) map[string]any {
		return map[string]any{`a`: `second a`, `b`: `second b`, `hash`: map[string]any{`y`: 2}}
	}, nil)
	opts := api.Options{provider.ProvidersKey: []api.Provider{first, second}}
	provide.DoWithParent(context.Background(), provider.Mux, opts, func(hs api.Session) {
		iv := hs.Invocation(nil, nil, nil)
		require.Equal(t, `first a`, provide.LookupOr(iv, `a`, ``, nil))
		require.Equal(t, `second b`, provide.LookupOr(iv, `b`, ``, nil))

		h, ok := provide.Lookup[map[string]any](iv, `hash`, api.Options{`merge`: `hash`})
		require.True(t, ok)
		require.Equal(t, map[string]any{`x`: 1, `y`: 2}, h)
	})
}

func TestMux_noProviders(t *testing.T) {
	provide.DoWithParent(context.Background(), provider.Mux, nil, func(hs api.Session) {
		_, ok := provide.Lookup[string](hs.Invocation(nil, nil, nil), `a`, nil)
		require.False(t, ok)
	})
}

func TestYaml(t *testing.T) {
	tp := provider.Yaml(`testdata/data.yaml`)
	require.Equal(t, `yaml file 'testdata/data.yaml'`, tp.FullName())
	provide.DoWithParent(context.Background(), tp, nil, func(hs api.Session) {
		iv := hs.Invocation(nil, nil, nil)
		v, ok := provide.Lookup[string](iv, `a`, nil)
		require.True(t, ok)
		require.Equal(t, `value of a`, v)

		v, ok = provide.Lookup[string](iv, `h.x`, nil)
		require.True(t, ok)
		require.Equal(t, `value of h.x`, v)

		_, ok = provide.Lookup[string](iv, `missing`, nil)
		require.False(t, ok)
	})
}

func TestYaml_missingFile(t *testing.T) {
	provide.DoWithParent(context.Background(), provider.Yaml(`testdata/no_such_file.yaml`), nil, func(hs api.Session) {
		_, ok := provide.Lookup[string](hs.Invocation(nil, nil, nil), `a`, nil)
		require.False(t, ok)
	})
}

func TestYamlData(t *testing.T) {
	provide.DoWithParent(context.Background(), provider.Mux, nil, func(hs api.Session) {
		iv := hs.Invocation(nil, nil, nil)
		data := provider.YamlData(iv.ProviderContext(api.Options{`path`: `testdata/data.yaml`}))
		require.Equal(t, `value of a`, data[`a`])

		data = provider.YamlData(iv.ProviderContext(api.Options{`path`: `testdata/no_such_file.yaml`}))
		require.Equal(t, map[string]any{}, data)

		require.PanicsWithError(t, `missing required provider option 'path'`, func() {
			provider.YamlData(iv.ProviderContext(nil))
		})

		require.PanicsWithError(t, `file 'testdata/notahash.yaml' does not contain a YAML hash`, func() {
			provider.YamlData(iv.ProviderContext(api.Options{`path`: `testdata/notahash.yaml`}))
		})
	})
}

func TestJSONData(t *testing.T) {
	provide.DoWithParent(context.Background(), provider.Mux, nil, func(hs api.Session) {
		iv := hs.Invocation(nil, nil, nil)
		data := provider.JSONData(iv.ProviderContext(api.Options{`path`: `testdata/data.json`}))
		require.Equal(t, `value of a`, data[`a`])

		data = provider.JSONData(iv.ProviderContext(api.Options{`path`: `testdata/no_such_file.json`}))
		require.Equal(t, map[string]any{}, data)

		require.PanicsWithError(t, `file 'testdata/notahash.json' does not contain a JSON object`, func() {
			provider.JSONData(iv.ProviderContext(api.Options{`path`: `testdata/notahash.json`}))
		})
	})
}
