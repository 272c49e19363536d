package merge_test

import (
	"testing"

	"github.com/lyraproj/provide/merge"
	"github.com/stretchr/testify/require"
)

func TestDeep_hash(t *testing.T) {
	a := map[string]any{`x`: map[string]any{`a`: 1}, `y`: 2}
	b := map[string]any{`x`: map[string]any{`b`: 2}, `z`: 3}
	v, changed := merge.Deep(a, b, nil)
	require.True(t, changed)
	require.Equal(t, map[string]any{`x`: map[string]any{`a`: 1, `b`: 2}, `y`: 2, `z`: 3}, v)
}

func TestDeep_hashNoChange(t *testing.T) {
	a := map[string]any{`x`: 1}
	b := map[string]any{`x`: 2}
	v, changed := merge.Deep(a, b, nil)
	require.False(t, changed)
	require.Equal(t, a, v)
}

func TestDeep_array(t *testing.T) {
	v, changed := merge.Deep([]any{`a`, `b`}, []any{`b`, `c`}, nil)
	require.True(t, changed)
	require.Equal(t, []any{`a`, `b`, `c`}, v)
}

func TestDeep_arrayEmpty(t *testing.T) {
	v, changed := merge.Deep([]any{}, []any{`a`}, nil)
	require.True(t, changed)
	require.Equal(t, []any{`a`}, v)
}

func TestDeep_mismatch(t *testing.T) {
	v, changed := merge.Deep(`a`, []any{`b`}, nil)
	require.False(t, changed)
	require.Equal(t, `a`, v)
}

func TestDeep_scalarConflictKeepsFirst(t *testing.T) {
	v, merged := merge.Deep(
		map[string]any{`one`: 1, `three`: map[string]any{`a`: `A`}},
		map[string]any{`one`: `overwritten`, `three`: map[string]any{`b`: `B`}}, nil)
	require.True(t, merged)
	require.Equal(t, map[string]any{`one`: 1, `three`: map[string]any{`a`: `A`, `b`: `B`}}, v)
}
