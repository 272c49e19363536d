package api

import (
	"bytes"
	"fmt"
	"strconv"
)

// A Name is a parsed version of the possibly dot-separated name of a requested
// value. The parts of a name will be strings or integers
type (
	Name interface {
		// Dig returns the result of using the parts beyond the root of this name to dig
		// into the given value. Maps are dug into with string or integer parts, slices
		// with integer parts only. The bool is false unless the dig was a success
		Dig(ic Invocation, v any) (any, bool)

		// Parts returns the parts of this name. Each part is either a string or an int value
		Parts() []any

		// Root returns the root name, i.e. the first part.
		Root() string

		// Source returns the string that this name was created from
		Source() string
	}

	name struct {
		source string
		parts  []any
	}
)

// ParseName parses the given string into a Name. Parts are separated by dots. A part
// that consists entirely of digits becomes an index. Single or double quotes prevent
// dots and digits within them from being interpreted
func ParseName(str string) Name {
	b := bytes.NewBufferString(``)
	return &name{str, parseUnquoted(b, str, str, []any{})}
}

func (k *name) Dig(ic Invocation, v any) (any, bool) {
	t := len(k.parts)
	if t == 1 {
		return v, true
	}

	return ic.WithSubLookup(k, func() (any, bool) {
		ok := true
		for i := 1; i < t; i++ {
			p := k.parts[i]
			v, ok = ic.WithSegment(p, func() (any, bool) {
				if sv, found := digStep(p, v); found {
					ic.ReportFound(p, sv)
					return sv, true
				}
				ic.ReportNotFound(p)
				return nil, false
			})
			if !ok {
				break
			}
		}
		return v, ok
	})
}

// digStep resolves one part against a container value. Containers produced by the
// yaml and json decoders are string keyed but a map with mixed keys is dug into
// using the part as is.
func digStep(p, v any) (any, bool) {
	switch vc := v.(type) {
	case []any:
		if ix, ok := p.(int); ok && ix >= 0 && ix < len(vc) {
			return vc[ix], true
		}
	case map[string]any:
		if s, ok := p.(string); ok {
			if sv, found := vc[s]; found {
				return sv, true
			}
		}
	case map[any]any:
		if sv, found := vc[p]; found {
			return sv, true
		}
	case Options:
		if s, ok := p.(string); ok {
			if sv, found := vc[s]; found {
				return sv, true
			}
		}
	}
	return nil, false
}

func (k *name) Parts() []any {
	return k.parts
}

func (k *name) Root() string {
	return k.parts[0].(string)
}

func (k *name) Source() string {
	return k.source
}

func parseUnquoted(b *bytes.Buffer, name, part string, parts []any) []any {
	mungedPart := func(ix int, part string) any {
		if i, err := strconv.ParseInt(part, 10, 32); err == nil {
			if ix == 0 {
				panic(fmt.Errorf(`name '%s' first segment cannot be an index`, name))
			}
			return int(i)
		}
		if part == `` {
			panic(fmt.Errorf(`name '%s' contains an empty segment`, name))
		}
		return part
	}

	for i, c := range part {
		switch c {
		case '\'', '"':
			return parseQuoted(b, c, name, part[i+1:], parts)
		case '.':
			parts = append(parts, mungedPart(len(parts), b.String()))
			b.Reset()
		default:
			_, _ = b.WriteRune(c)
		}
	}
	return append(parts, mungedPart(len(parts), b.String()))
}

func parseQuoted(b *bytes.Buffer, q rune, name, part string, parts []any) []any {
	for i, c := range part {
		if c == q {
			if i == len(part)-1 {
				return append(parts, b.String())
			}
			return parseUnquoted(b, name, part[i+1:], parts)
		}
		_, _ = b.WriteRune(c)
	}
	panic(fmt.Errorf(`unterminated quote in name '%s'`, name))
}
