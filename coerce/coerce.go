// Package coerce converts dynamically produced values into statically requested types.
//
// Values that are directly assignable pass through untouched, so opaque service
// objects never pay for a conversion. Data shapes such as the maps, slices, and
// scalars produced by the yaml and json decoders are bridged over cty conversion
// rules, which makes a value read from a data file able to serve a request for a
// more precise type.
package coerce

import (
	"fmt"
	"math/big"
	"reflect"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/ext/typeexpr"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/lyraproj/provide/api"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

var anyType = reflect.TypeFor[any]()

// To converts the given value to the given type. A nil type is treated as a
// request for an unconstrained value
func To(v any, typ reflect.Type) (any, error) {
	if typ == nil || typ == anyType {
		return v, nil
	}
	if v == nil {
		return nil, fmt.Errorf(`cannot convert nil to %s`, typ)
	}
	if reflect.TypeOf(v).AssignableTo(typ) {
		return v, nil
	}

	cv, err := toCty(v)
	if err != nil {
		return nil, fmt.Errorf(`value of type %T cannot serve a request for %s`, v, typ)
	}
	want, err := gocty.ImpliedType(reflect.Zero(typ).Interface())
	if err != nil {
		return nil, fmt.Errorf(`value of type %T cannot serve a request for %s`, v, typ)
	}
	converted, err := convert.Convert(cv, want)
	if err != nil {
		return nil, fmt.Errorf(`cannot convert %T to %s: %s`, v, typ, err)
	}
	ptr := reflect.New(typ)
	if err = gocty.FromCtyValue(converted, ptr.Interface()); err != nil {
		return nil, fmt.Errorf(`cannot convert %T to %s: %s`, v, typ, err)
	}
	return ptr.Elem().Interface(), nil
}

// ToType asserts that the given value conforms to the given type and returns it
// converted to that type in its natural Go form
func ToType(v any, ty cty.Type) (any, error) {
	cv, err := toCty(v)
	if err != nil {
		return nil, err
	}
	converted, err := convert.Convert(cv, ty)
	if err != nil {
		return nil, fmt.Errorf(`value does not conform to type %s: %s`, typeexpr.TypeString(ty), err)
	}
	return fromCty(converted)
}

// ParseType parses a type expression such as string, number, bool, list(string),
// map(number), object({host=string}), or any, and returns the corresponding type
func ParseType(src string) (cty.Type, error) {
	expr, diags := hclsyntax.ParseExpression([]byte(src), `type`, hcl.InitialPos)
	if diags.HasErrors() {
		return cty.NilType, fmt.Errorf(`invalid type expression '%s': %s`, src, diags)
	}
	ty, diags := typeexpr.Type(expr)
	if diags.HasErrors() {
		return cty.NilType, fmt.Errorf(`invalid type expression '%s': %s`, src, diags)
	}
	return ty, nil
}

// toCty converts a native Go value into its corresponding cty value. Containers
// are converted element by element so that the untyped containers produced by
// the yaml and json decoders convert cleanly
func toCty(v any) (cty.Value, error) {
	switch v := v.(type) {
	case bool:
		return cty.BoolVal(v), nil
	case string:
		return cty.StringVal(v), nil
	case int:
		return cty.NumberIntVal(int64(v)), nil
	case int64:
		return cty.NumberIntVal(v), nil
	case float64:
		return cty.NumberFloatVal(v), nil
	case []any:
		if len(v) == 0 {
			return cty.EmptyTupleVal, nil
		}
		vals := make([]cty.Value, len(v))
		for i, ev := range v {
			cv, err := toCty(ev)
			if err != nil {
				return cty.NilVal, err
			}
			vals[i] = cv
		}
		return cty.TupleVal(vals), nil
	case map[string]any:
		return mapToCty(v)
	case api.Options:
		return mapToCty(v)
	case nil:
		return cty.NullVal(cty.DynamicPseudoType), nil
	default:
		ty, err := gocty.ImpliedType(v)
		if err != nil {
			return cty.NilVal, fmt.Errorf(`no cty representation for value of type %T`, v)
		}
		return gocty.ToCtyValue(v, ty)
	}
}

func mapToCty(v map[string]any) (cty.Value, error) {
	if len(v) == 0 {
		return cty.EmptyObjectVal, nil
	}
	vals := make(map[string]cty.Value, len(v))
	for k, ev := range v {
		cv, err := toCty(ev)
		if err != nil {
			return cty.NilVal, err
		}
		vals[k] = cv
	}
	return cty.ObjectVal(vals), nil
}

// fromCty recursively converts a cty value to its most natural Go counterpart
func fromCty(v cty.Value) (any, error) {
	if v.IsNull() || !v.IsKnown() {
		return nil, nil
	}
	ty := v.Type()
	switch {
	case ty == cty.String:
		return v.AsString(), nil
	case ty == cty.Bool:
		return v.True(), nil
	case ty == cty.Number:
		bf := v.AsBigFloat()
		if i, acc := bf.Int64(); acc == big.Exact {
			return int(i), nil
		}
		f, _ := bf.Float64()
		return f, nil
	case ty.IsListType() || ty.IsSetType() || ty.IsTupleType():
		slice := make([]any, 0, v.LengthInt())
		it := v.ElementIterator()
		for it.Next() {
			_, ev := it.Element()
			nv, err := fromCty(ev)
			if err != nil {
				return nil, err
			}
			slice = append(slice, nv)
		}
		return slice, nil
	case ty.IsObjectType() || ty.IsMapType():
		m := make(map[string]any)
		it := v.ElementIterator()
		for it.Next() {
			key, ev := it.Element()
			nv, err := fromCty(ev)
			if err != nil {
				return nil, err
			}
			m[key.AsString()] = nv
		}
		return m, nil
	default:
		return nil, fmt.Errorf(`unsupported type %s`, ty.FriendlyName())
	}
}
