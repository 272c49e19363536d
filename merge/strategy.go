package merge

import (
	"fmt"
	"reflect"

	"github.com/lyraproj/provide/api"
)

type (
	deepMerge struct{ opts api.Options }

	hashMerge struct{}

	firstFound struct{}

	unique struct{}
)

// GetStrategy returns the merge.MergeStrategy that corresponds to the given name. The
// options argument is only applicable to deep merge
func GetStrategy(n string, opts api.Options) api.MergeStrategy {
	switch n {
	case `first`:
		return &firstFound{}
	case `unique`:
		return &unique{}
	case `hash`:
		return &hashMerge{}
	case `deep`:
		if opts == nil {
			opts = api.Options{}
		}
		return &deepMerge{opts}
	default:
		panic(fmt.Errorf(`unknown merge strategy '%s'`, n))
	}
}

type merger interface {
	api.MergeStrategy

	merge(a, b any) any

	mergeSingle(v reflect.Value, vf func(l any) (any, bool)) (any, bool)

	convertValue(v any) any
}

func doLookup(s merger, vs any, ic api.Invocation, vf func(l any) (any, bool)) (any, bool) {
	vsr := reflect.ValueOf(vs)
	if vsr.Kind() != reflect.Slice {
		return nil, false
	}
	top := vsr.Len()
	switch top {
	case 0:
		return nil, false
	case 1:
		return s.mergeSingle(vsr.Index(0), vf)
	default:
		return ic.WithMerge(s, func() (any, bool) {
			var memo any
			found := false
			for idx := 0; idx < top; idx++ {
				if v, ok := variantLookup(vsr.Index(idx), vf); ok {
					if found {
						memo = s.merge(memo, v)
					} else {
						memo = s.convertValue(v)
						found = true
					}
				}
			}
			if found {
				ic.ReportMergeResult(memo)
			}
			return memo, found
		})
	}
}

func variantLookup(v reflect.Value, vf func(l any) (any, bool)) (any, bool) {
	if v.CanInterface() {
		return vf(v.Interface())
	}
	return nil, false
}

func (d *firstFound) Name() string {
	return `first`
}

func (d *firstFound) Label() string {
	return `first found strategy`
}

func (d *firstFound) MergeLookup(vs any, ic api.Invocation, f func(variant any) (any, bool)) (any, bool) {
	vsr := reflect.ValueOf(vs)
	if vsr.Kind() != reflect.Slice {
		return nil, false
	}
	top := vsr.Len()
	switch top {
	case 0:
		return nil, false
	case 1:
		return variantLookup(vsr.Index(0), f)
	default:
		for idx := 0; idx < top; idx++ {
			if v, ok := variantLookup(vsr.Index(idx), f); ok {
				ic.ReportMergeResult(v)
				return v, true
			}
		}
		return nil, false
	}
}

func (d *firstFound) Options() api.Options {
	return api.Options{}
}

func (d *firstFound) mergeSingle(v reflect.Value, vf func(l any) (any, bool)) (any, bool) {
	return variantLookup(v, vf)
}

func (d *firstFound) convertValue(v any) any {
	return v
}

func (d *firstFound) merge(a, b any) any {
	return a
}

func (d *unique) Name() string {
	return `unique`
}

func (d *unique) Label() string {
	return `unique merge strategy`
}

func (d *unique) MergeLookup(vs any, ic api.Invocation, f func(variant any) (any, bool)) (any, bool) {
	return doLookup(d, vs, ic, f)
}

func (d *unique) Options() api.Options {
	return api.Options{}
}

func (d *unique) mergeSingle(rv reflect.Value, vf func(l any) (any, bool)) (any, bool) {
	v, ok := variantLookup(rv, vf)
	if !ok {
		return nil, false
	}
	if av, isArray := v.([]any); isArray {
		return uniqueSlice(flatten(av)), true
	}
	return v, true
}

func (d *unique) convertValue(v any) any {
	if av, ok := v.([]any); ok {
		return flatten(av)
	}
	return []any{v}
}

func (d *unique) merge(a, b any) any {
	av := d.convertValue(a).([]any)
	bv := d.convertValue(b).([]any)
	return uniqueSlice(append(append(make([]any, 0, len(av)+len(bv)), av...), bv...))
}

func (d *deepMerge) Name() string {
	return `deep`
}

func (d *deepMerge) Label() string {
	return `deep merge strategy`
}

func (d *deepMerge) MergeLookup(vs any, ic api.Invocation, f func(variant any) (any, bool)) (any, bool) {
	return doLookup(d, vs, ic, f)
}

func (d *deepMerge) Options() api.Options {
	return d.opts
}

func (d *deepMerge) mergeSingle(v reflect.Value, vf func(l any) (any, bool)) (any, bool) {
	return variantLookup(v, vf)
}

func (d *deepMerge) convertValue(v any) any {
	return v
}

func (d *deepMerge) merge(a, b any) any {
	v, _ := Deep(a, b, d.opts)
	return v
}

func (d *hashMerge) Name() string {
	return `hash`
}

func (d *hashMerge) Label() string {
	return `hash merge strategy`
}

func (d *hashMerge) MergeLookup(vs any, ic api.Invocation, f func(variant any) (any, bool)) (any, bool) {
	return doLookup(d, vs, ic, f)
}

func (d *hashMerge) Options() api.Options {
	return api.Options{}
}

func (d *hashMerge) mergeSingle(v reflect.Value, vf func(l any) (any, bool)) (any, bool) {
	return variantLookup(v, vf)
}

func (d *hashMerge) convertValue(v any) any {
	return v
}

func (d *hashMerge) merge(a, b any) any {
	if ah, ok := a.(map[string]any); ok {
		var bh map[string]any
		if bh, ok = b.(map[string]any); ok {
			m := make(map[string]any, len(ah)+len(bh))
			for k, v := range bh {
				m[k] = v
			}
			for k, v := range ah {
				m[k] = v
			}
			return m
		}
	}
	return a
}

func flatten(vs []any) []any {
	r := make([]any, 0, len(vs))
	for _, v := range vs {
		if av, ok := v.([]any); ok {
			r = append(r, flatten(av)...)
		} else {
			r = append(r, v)
		}
	}
	return r
}

func uniqueSlice(vs []any) []any {
	r := make([]any, 0, len(vs))
	for _, v := range vs {
		if !containsValue(r, v) {
			r = append(r, v)
		}
	}
	return r
}

func containsValue(vs []any, v any) bool {
	for _, e := range vs {
		if reflect.DeepEqual(e, v) {
			return true
		}
	}
	return false
}
