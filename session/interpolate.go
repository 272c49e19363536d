package session

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/lyraproj/provide/api"
)

var iplPattern = regexp.MustCompile(`%{[^}]*}`)
var emptyInterpolations = map[string]bool{
	``:     true,
	`::`:   true,
	`""`:   true,
	"''":   true,
	`"::"`: true,
	"'::'": true,
}

// Interpolate resolves interpolations in the given value and returns the result
func (ic *ivContext) Interpolate(value any, allowMethods bool) any {
	if result, changed := ic.doInterpolate(value, allowMethods); changed {
		return result
	}
	return value
}

func (ic *ivContext) doInterpolate(value any, allowMethods bool) (any, bool) {
	switch value := value.(type) {
	case string:
		return ic.InterpolateString(value, allowMethods)
	case []any:
		cp := make([]any, len(value))
		changed := false
		for i, e := range value {
			v, c := ic.doInterpolate(e, allowMethods)
			cp[i] = v
			if c {
				changed = true
			}
		}
		if changed {
			return cp, true
		}
		return value, false
	case map[string]any:
		return ic.interpolateMap(value, allowMethods)
	case api.Options:
		if m, changed := ic.interpolateMap(value, allowMethods); changed {
			return api.Options(m), true
		}
		return value, false
	}
	return value, false
}

func (ic *ivContext) interpolateMap(hash map[string]any, allowMethods bool) (map[string]any, bool) {
	cp := make(map[string]any, len(hash))
	changed := false
	for k, e := range hash {
		ki, kc := ic.InterpolateString(k, allowMethods)
		v, vc := ic.doInterpolate(e, allowMethods)
		if kc || vc {
			changed = true
		}
		cp[stringify(ki)] = v
	}
	if changed {
		return cp, true
	}
	return hash, false
}

const scopeMethod = 1
const aliasMethod = 2
const lookupMethod = 3
const literalMethod = 4

var methodMatch = regexp.MustCompile(`^(\w+)\((?:["]([^"]+)["]|[']([^']+)['])\)$`)

func getMethodAndData(expr string, allowMethods bool) (int, string) {
	if groups := methodMatch.FindStringSubmatch(expr); groups != nil {
		if !allowMethods {
			panic(errors.New(`interpolation using method syntax is not allowed in this context`))
		}
		data := groups[2]
		if data == `` {
			data = groups[3]
		}
		switch groups[1] {
		case `alias`:
			return aliasMethod, data
		case `provide`, `lookup`:
			return lookupMethod, data
		case `literal`:
			return literalMethod, data
		case `scope`:
			return scopeMethod, data
		default:
			panic(fmt.Errorf(`unknown interpolation method '%s'`, groups[1]))
		}
	}
	return scopeMethod, expr
}

// InterpolateString resolves a string containing interpolation expressions
func (ic *ivContext) InterpolateString(str string, allowMethods bool) (any, bool) {
	if !strings.Contains(str, `%{`) {
		return str, false
	}

	v, _ := ic.WithInterpolation(str, func() (any, bool) {
		var result any
		resolved := iplPattern.ReplaceAllStringFunc(str, func(match string) string {
			expr := strings.TrimSpace(match[2 : len(match)-1])
			if emptyInterpolations[expr] {
				return ``
			}
			var methodKey int
			methodKey, expr = getMethodAndData(expr, allowMethods)
			if methodKey == aliasMethod && match != str {
				panic(errors.New(`'alias' interpolation is only permitted if the expression is equal to the entire string`))
			}

			switch methodKey {
			case literalMethod:
				return expr
			case scopeMethod:
				if val, ok := ic.interpolateInScope(expr, allowMethods); ok {
					return stringify(val)
				}
				return ``
			default:
				val, ok := ic.Lookup(api.NewRequest(nil, expr), nil)
				if methodKey == aliasMethod {
					if ok {
						result = val
					}
					return ``
				}
				if ok {
					return stringify(val)
				}
				return ``
			}
		})
		if result == nil {
			result = resolved
		}
		return result, true
	})
	return v, true
}

// interpolateInScope resolves a name expression in the invocation scope
func (ic *ivContext) interpolateInScope(expr string, allowMethods bool) (any, bool) {
	name := api.ParseName(expr)
	if val, ok := ic.Scope().Get(name.Root()); ok {
		val, _ = ic.doInterpolate(val, allowMethods)
		return name.Dig(ic, val)
	}
	return nil, false
}

func stringify(v any) string {
	switch v := v.(type) {
	case nil:
		return ``
	case string:
		return v
	default:
		return fmt.Sprintf(`%v`, v)
	}
}
