package provider_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lyraproj/provide/api"
	"github.com/lyraproj/provide/provide"
	"github.com/lyraproj/provide/provider"
	"github.com/stretchr/testify/require"
)

type dbConfig struct {
	dsn string
}

type repo struct {
	cfg *dbConfig
}

type handler struct {
	r *repo
}

func TestConstructor_dependencyGraph(t *testing.T) {
	newRepo := func(c *dbConfig) *repo { return &repo{cfg: c} }
	newHandler := func(r *repo) *handler { return &handler{r: r} }
	opts := api.Options{provider.ProvidersKey: []api.Provider{
		provider.Constructor(newHandler),
		provider.Constructor(newRepo),
		provider.Value(&dbConfig{dsn: `file:test.db`}),
	}}
	provide.DoWithParent(context.Background(), provider.Mux, opts, func(hs api.Session) {
		h, ok := provide.Get[*handler](hs.Invocation(nil, nil, nil))
		require.True(t, ok)
		require.Equal(t, `file:test.db`, h.r.cfg.dsn)
	})
}

func TestConstructor_singleton(t *testing.T) {
	built := 0
	newRepo := func(c *dbConfig) *repo {
		built++
		return &repo{cfg: c}
	}
	opts := api.Options{provider.ProvidersKey: []api.Provider{
		provider.Singleton(provider.Constructor(newRepo)),
		provider.Value(&dbConfig{dsn: `file:test.db`}),
	}}
	provide.DoWithParent(context.Background(), provider.Mux, opts, func(hs api.Session) {
		iv := hs.Invocation(nil, nil, nil)
		r1, ok := provide.Get[*repo](iv)
		require.True(t, ok)
		r2, ok := provide.Get[*repo](iv)
		require.True(t, ok)
		require.Same(t, r1, r2)
		require.Equal(t, 1, built)
	})
}

func TestConstructor_error(t *testing.T) {
	failing := provider.Constructor(func() (*repo, error) {
		return nil, errors.New(`no database`)
	})
	provide.DoWithParent(context.Background(), failing, nil, func(hs api.Session) {
		_, ok := provide.Get[*repo](hs.Invocation(nil, nil, nil))
		require.False(t, ok)
	})
}

func TestConstructor_missingDependency(t *testing.T) {
	newRepo := func(c *dbConfig) *repo { return &repo{cfg: c} }
	opts := api.Options{provider.ProvidersKey: []api.Provider{
		provider.Constructor(newRepo),
	}}
	provide.DoWithParent(context.Background(), provider.Mux, opts, func(hs api.Session) {
		_, ok := provide.Get[*repo](hs.Invocation(nil, nil, nil))
		require.False(t, ok)
	})
}

type aNode struct {
	b *bNode
}

type bNode struct {
	a *aNode
}

func TestConstructor_cycle(t *testing.T) {
	newA := func(b *bNode) *aNode { return &aNode{b: b} }
	newB := func(a *aNode) *bNode { return &bNode{a: a} }
	opts := api.Options{provider.ProvidersKey: []api.Provider{
		provider.Constructor(newA),
		provider.Constructor(newB),
	}}
	err := provide.TryWithParent(context.Background(), provider.Mux, opts, func(hs api.Session) error {
		provide.Get[*aNode](hs.Invocation(nil, nil, nil))
		return nil
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), `recursive lookup detected`)
}

func TestConstructor_badSignatures(t *testing.T) {
	require.PanicsWithError(t, `constructor must be a function returning a value and an optional error`, func() {
		provider.Constructor(42)
	})
	require.PanicsWithError(t, `constructor must be a function returning a value and an optional error`, func() {
		provider.Constructor(func() {})
	})
	require.PanicsWithError(t, `second return value of a constructor must be an error`, func() {
		provider.Constructor(func() (int, int) { return 0, 0 })
	})
	require.PanicsWithError(t, `constructor cannot be variadic`, func() {
		provider.Constructor(func(xs ...int) int { return 0 })
	})
}
