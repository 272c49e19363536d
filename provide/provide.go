// Package provide contains the functions to use when using provide as a library.
package provide

import (
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/lyraproj/provide/api"
	"github.com/lyraproj/provide/coerce"
	"github.com/lyraproj/provide/explain"
	"github.com/lyraproj/provide/session"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

// A CommandOptions contains the options given to the CLI lookup command or a REST invocation.
type CommandOptions struct {
	// Type is a type expression such as "string" or "list(number)" used for assertion
	// of the found value
	Type string

	// Merge is the name of a merge strategy
	Merge string

	// Default is a pointer to the string representation of a default value or nil if no default value exists
	Default *string

	// Client is the name of the client on whose behalf the lookup is performed. Providers
	// are free to vary their answers based on it
	Client string

	// VarPaths are optional paths to files containing extra variables to add to the lookup scope
	VarPaths []string

	// Variables are optional key:value or key=value strings to add to the lookup scope
	Variables []string

	// RenderAs is the name of the desired rendering
	RenderAs string

	// ExplainData should be set to true to explain the progress of a lookup
	ExplainData bool

	// LookupAll should be set to true to look up all names and render the results as a map
	LookupAll bool
}

// Lookup resolves the given dotted name and returns the found value converted to T.
// The options may be nil, an api.Options, or a map[string]any with call options such
// as the merge strategy
func Lookup[T any](ic api.Invocation, name string, options any) (T, bool) {
	var zero T
	v, ok := ic.Lookup(api.RequestFor[T](name), toCallOptions(options))
	if !ok {
		return zero, false
	}
	return v.(T), true
}

// LookupOr resolves the given dotted name and returns the found value converted to
// T, or the given default when no value is found
func LookupOr[T any](ic api.Invocation, name string, dflt T, options any) T {
	if v, ok := Lookup[T](ic, name, options); ok {
		return v
	}
	return dflt
}

// MustLookup resolves the given dotted name and returns the found value converted
// to T. A panic is raised when no value is found
func MustLookup[T any](ic api.Invocation, name string, options any) T {
	if v, ok := Lookup[T](ic, name, options); ok {
		return v
	}
	panic(api.NameNotFound(name))
}

// Get resolves a value by type alone. The request reaches the top provider with
// no name, so it is answered by providers that serve typed requests, such as the
// ones registered with the Mux provider
func Get[T any](ic api.Invocation) (T, bool) {
	var zero T
	v, ok := ic.Lookup(api.RequestFor[T](``), nil)
	if !ok {
		return zero, false
	}
	return v.(T), true
}

// MustGet resolves a value by type alone and panics when no provider produces one
func MustGet[T any](ic api.Invocation) T {
	if v, ok := Get[T](ic); ok {
		return v
	}
	panic(api.RequestNotFound(api.RequestFor[T](``).String()))
}

// LookupAll resolves all given names and returns the findings as a map keyed by
// name. Names that have no value are absent from the map
func LookupAll(ic api.Invocation, names []string, options any) map[string]any {
	opts := toCallOptions(options)
	response := make(map[string]any, len(names))
	for _, name := range names {
		if v, ok := ic.Lookup(api.NewRequest(nil, name), opts); ok {
			response[name] = v
		}
	}
	return response
}

func toCallOptions(options any) api.Options {
	if options == nil {
		return nil
	}
	return api.ToOptions(`lookup options`, options)
}

// TryWithParent creates a session with the given top provider and options and
// calls the given consumer function with it. A panic raised during the call is
// recovered and returned as an error together with any error returned by the
// consumer itself
func TryWithParent(parent context.Context, tp api.Provider, options any, consumer func(api.Session) error) error {
	return catch(func() {
		if err := consumer(session.New(parent, tp, options)); err != nil {
			panic(err)
		}
	})
}

// DoWithParent creates a session with the given top provider and options and
// calls the given consumer function with it
func DoWithParent(parent context.Context, tp api.Provider, options any, consumer func(api.Session)) {
	consumer(session.New(parent, tp, options))
}

func catch(doer func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			switch r := r.(type) {
			case error:
				err = r
			case string:
				err = fmt.Errorf(`%s`, r)
			default:
				panic(r)
			}
		}
	}()
	doer()
	return nil
}

// varSplit splits on either ':' or '=' but not on '::', ':=', '=:' or '=='
var varSplit = regexp.MustCompile(`\A(.*?[^:=])[:=]([^:=].*)\z`)
var needParsePrefix = []string{`{`, `[`, `"`, `'`}

// LookupAndRender performs a lookup using the given command options and arguments and renders the result on the given
// io.Writer in accordance with the `RenderAs` option.
func LookupAndRender(s api.Session, opts *CommandOptions, args []string, out io.Writer) bool {
	tp := cty.NilType
	if opts.Type != `` {
		var err error
		if tp, err = coerce.ParseType(opts.Type); err != nil {
			panic(err)
		}
	}

	var options api.Options
	if !(opts.Merge == `` || opts.Merge == `first`) {
		options = api.Options{`merge`: opts.Merge}
	}

	var client api.Client
	if opts.Client != `` {
		client = api.NamedClient(opts.Client)
	}

	var explainer api.Explainer
	if opts.ExplainData {
		explainer = explain.NewExplainer()
	}

	invocation := s.Invocation(client, createScope(opts), explainer)

	var found any
	ok := false
	if opts.LookupAll {
		m := LookupAll(invocation, args, options)
		if len(m) > 0 {
			found = assertType(tp, m)
			ok = true
		}
	} else {
		for _, name := range args {
			if v, vk := invocation.Lookup(api.NewRequest(nil, name), options); vk {
				found = assertType(tp, v)
				ok = true
				break
			}
		}
		if !ok && opts.Default != nil {
			found = assertType(tp, parseCommandLineValue(*opts.Default))
			ok = true
		}
	}

	if explainer != nil {
		renderAs := Text
		if opts.RenderAs != `` {
			renderAs = RenderName(opts.RenderAs)
		}
		Render(renderAs, explainer, out)
		return ok
	}

	if !ok {
		return false
	}

	renderAs := YAML
	if opts.RenderAs != `` {
		renderAs = RenderName(opts.RenderAs)
	}
	Render(renderAs, found, out)
	return true
}

func assertType(tp cty.Type, v any) any {
	if tp == cty.NilType {
		return v
	}
	cv, err := coerce.ToType(v, tp)
	if err != nil {
		panic(err)
	}
	return cv
}

func parseCommandLineValue(vs string) any {
	vs = strings.TrimSpace(vs)
	for _, pfx := range needParsePrefix {
		if strings.HasPrefix(vs, pfx) {
			var v any
			if err := yaml.Unmarshal([]byte(vs), &v); err != nil {
				panic(fmt.Errorf(`unable to parse value '%s': %s`, vs, err))
			}
			return v
		}
	}
	return vs
}

func createScope(opts *CommandOptions) map[string]any {
	scope := map[string]any{}
	for _, e := range opts.Variables {
		m := varSplit.FindStringSubmatch(e)
		if m == nil {
			panic(fmt.Errorf(`unable to parse variable '%s'`, e))
		}
		scope[strings.TrimSpace(m[1])] = parseCommandLineValue(m[2])
	}
	addVarPaths(opts.VarPaths, scope)
	return scope
}

func addVarPaths(varPaths []string, m map[string]any) {
	for _, vars := range varPaths {
		var bs []byte
		var err error
		if vars == `-` {
			bs, err = io.ReadAll(os.Stdin)
		} else {
			bs, err = os.ReadFile(vars)
		}
		if err == nil && len(bs) > 0 {
			var yv any
			if err = yaml.Unmarshal(bs, &yv); err == nil {
				if data, ok := yv.(map[string]any); ok {
					for k, v := range data {
						m[k] = v
					}
				} else {
					err = api.YamlNotHash(vars)
				}
			}
		}
		if err != nil {
			panic(err)
		}
	}
}
