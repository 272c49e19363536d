package merge

import (
	"reflect"

	"github.com/lyraproj/provide/api"
)

// Deep will merge the values 'a' and 'b' if both values are hashes or both values are
// arrays. When this is not the case, no merge takes place and the 'a' argument is returned.
// The second bool return value is true if a merge took place and false when the first
// argument is returned.
//
// When both values are hashes, Deep is called recursively for entries with identical keys.
// When both values are arrays, the merge creates a union of the unique elements from the two
// arrays. No recursive merge takes place for the array elements.
func Deep(a, b any, opi any) (any, bool) {
	var options api.Options
	if opi != nil {
		options = api.ToOptions(`deep merge options`, opi)
	}
	return deep(a, b, options)
}

func deep(a, b any, options api.Options) (any, bool) {
	switch a := a.(type) {
	case map[string]any:
		if hb, ok := b.(map[string]any); ok {
			es := make(map[string]any, len(a)+len(hb))
			for k, av := range a {
				if bv, found := hb[k]; found {
					if m, mh := deep(av, bv, options); mh {
						es[k] = m
						continue
					}
				}
				es[k] = av
			}
			for k, bv := range hb {
				if _, found := a[k]; !found {
					es[k] = bv
				}
			}
			if !reflect.DeepEqual(a, es) {
				return es, true
			}
		}

	case []any:
		if ab, ok := b.([]any); ok && len(ab) > 0 {
			if len(a) == 0 {
				return ab, true
			}
			an := uniqueSlice(append(append(make([]any, 0, len(a)+len(ab)), a...), ab...))
			if !reflect.DeepEqual(an, a) {
				return an, true
			}
		}
	}
	return a, false
}
