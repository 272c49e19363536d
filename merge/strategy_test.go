package merge_test

import (
	"context"
	"testing"

	"github.com/lyraproj/provide/api"
	"github.com/lyraproj/provide/merge"
	"github.com/lyraproj/provide/provide"
	"github.com/lyraproj/provide/provider"
	"github.com/stretchr/testify/require"
)

func testInvocation(t *testing.T, f func(ic api.Invocation)) {
	t.Helper()
	tp := provider.FromLookupKey(`scope`, provider.Scope, nil)
	provide.DoWithParent(context.Background(), tp, nil, func(hs api.Session) {
		t.Helper()
		f(hs.Invocation(nil, nil, nil))
	})
}

func TestGetStrategy_names(t *testing.T) {
	first := merge.GetStrategy(`first`, nil)
	require.Equal(t, `first`, first.Name())
	require.Equal(t, `first found strategy`, first.Label())

	unique := merge.GetStrategy(`unique`, nil)
	require.Equal(t, `unique`, unique.Name())
	require.Equal(t, `unique merge strategy`, unique.Label())

	hash := merge.GetStrategy(`hash`, nil)
	require.Equal(t, `hash`, hash.Name())
	require.Equal(t, `hash merge strategy`, hash.Label())

	deep := merge.GetStrategy(`deep`, api.Options{`knockout_prefix`: `--`})
	require.Equal(t, `deep`, deep.Name())
	require.Equal(t, `deep merge strategy`, deep.Label())
	require.Equal(t, api.Options{`knockout_prefix`: `--`}, deep.Options())
}

func TestGetStrategy_unknown(t *testing.T) {
	require.PanicsWithError(t, `unknown merge strategy 'bogus'`, func() {
		merge.GetStrategy(`bogus`, nil)
	})
}

func TestMergeLookup_firstFound(t *testing.T) {
	testInvocation(t, func(ic api.Invocation) {
		ms := merge.GetStrategy(`first`, nil)
		v, ok := ms.MergeLookup([]any{`a`, `b`}, ic, func(l any) (any, bool) {
			if l == `b` {
				return `value of b`, true
			}
			return nil, false
		})
		require.True(t, ok)
		require.Equal(t, `value of b`, v)
	})
}

func TestMergeLookup_firstFoundMiss(t *testing.T) {
	testInvocation(t, func(ic api.Invocation) {
		ms := merge.GetStrategy(`first`, nil)
		_, ok := ms.MergeLookup([]any{`a`, `b`}, ic, func(l any) (any, bool) {
			return nil, false
		})
		require.False(t, ok)
	})
}

func TestMergeLookup_unique(t *testing.T) {
	testInvocation(t, func(ic api.Invocation) {
		ms := merge.GetStrategy(`unique`, nil)
		v, ok := ms.MergeLookup([]any{
			[]any{`one`, `two`},
			[]any{`two`, `three`}}, ic, func(l any) (any, bool) {
			return l, true
		})
		require.True(t, ok)
		require.Equal(t, []any{`one`, `two`, `three`}, v)
	})
}

func TestMergeLookup_uniqueFlattens(t *testing.T) {
	testInvocation(t, func(ic api.Invocation) {
		ms := merge.GetStrategy(`unique`, nil)
		v, ok := ms.MergeLookup([]any{
			[]any{[]any{`a`, `b`}, `b`, `c`}}, ic, func(l any) (any, bool) {
			return l, true
		})
		require.True(t, ok)
		require.Equal(t, []any{`a`, `b`, `c`}, v)
	})
}

func TestMergeLookup_hash(t *testing.T) {
	testInvocation(t, func(ic api.Invocation) {
		ms := merge.GetStrategy(`hash`, nil)
		v, ok := ms.MergeLookup([]any{
			map[string]any{`a`: 1, `b`: 1},
			map[string]any{`b`: 2, `c`: 2}}, ic, func(l any) (any, bool) {
			return l, true
		})
		require.True(t, ok)
		require.Equal(t, map[string]any{`a`: 1, `b`: 1, `c`: 2}, v)
	})
}

func TestMergeLookup_deep(t *testing.T) {
	testInvocation(t, func(ic api.Invocation) {
		ms := merge.GetStrategy(`deep`, nil)
		v, ok := ms.MergeLookup([]any{
			map[string]any{`a`: map[string]any{`x`: 1}, `s`: []any{1, 2}},
			map[string]any{`a`: map[string]any{`y`: 2}, `s`: []any{2, 3}}}, ic, func(l any) (any, bool) {
			return l, true
		})
		require.True(t, ok)
		require.Equal(t, map[string]any{
			`a`: map[string]any{`x`: 1, `y`: 2},
			`s`: []any{1, 2, 3}}, v)
	})
}

func TestMergeLookup_notASlice(t *testing.T) {
	testInvocation(t, func(ic api.Invocation) {
		ms := merge.GetStrategy(`deep`, nil)
		_, ok := ms.MergeLookup(`scalar`, ic, func(l any) (any, bool) {
			return l, true
		})
		require.False(t, ok)
	})
}

func TestMergeLookup_hashSingleVariant(t *testing.T) {
	testInvocation(t, func(ic api.Invocation) {
		ms := merge.GetStrategy(`hash`, nil)
		v, ok := ms.MergeLookup([]any{map[string]any{`a`: 1}}, ic, func(l any) (any, bool) {
			return l, true
		})
		require.True(t, ok)
		require.Equal(t, map[string]any{`a`: 1}, v)
	})
}
