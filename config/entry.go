package config

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/lyraproj/provide/api"
)

type (
	entry struct {
		cfg       *provideCfg
		dataDir   string
		options   api.Options
		function  api.Function
		name      string
		locations []api.Location
	}
)

// FunctionKeys are the valid keys to use when defining a function in a hierarchy entry
var FunctionKeys = []string{string(api.KindDataHash), string(api.KindLookupKey)}

// LocationKeys are the valid keys to use when defining locations in a hierarchy entry
var LocationKeys = []string{string(api.LcPath), `paths`, string(api.LcGlob), `globs`}

// ReservedOptionKeys are the option keys that are reserved by provide
var ReservedOptionKeys = []string{string(api.LcPath)}

func keyList(keys []string) string {
	return strings.Join(keys, `, `)
}

func (e *entry) Options() api.Options {
	return e.options
}

func (e *entry) DataDir() string {
	return e.dataDir
}

func (e *entry) Function() api.Function {
	return e.function
}

func (e *entry) initialize(name string, re *rawEntry) {
	if len(re.Options) > 0 {
		for optKey := range re.Options {
			if slices.Contains(ReservedOptionKeys, optKey) {
				panic(fmt.Errorf(`option key '%s' used in hierarchy '%s' is reserved by provide`, optKey, name))
			}
		}
		e.options = api.Options(re.Options)
	}
	if re.DataHash != `` {
		e.function = &function{api.KindDataHash, re.DataHash}
	}
	if re.LookupKey != `` {
		if e.function != nil {
			panic(fmt.Errorf(`only one of %s can be defined in hierarchy '%s'`, keyList(FunctionKeys), name))
		}
		e.function = &function{api.KindLookupKey, re.LookupKey}
	}
}

func (e *entry) Copy(cfg api.Config) api.Entry {
	c := *e
	c.cfg = cfg.(*provideCfg)
	return &c
}

func (e *entry) Name() string {
	return e.name
}

func (e *entry) Locations() []api.Location {
	return e.locations
}

func (e *entry) resolveFunction(ic api.Invocation, defaults api.Entry) {
	if e.function == nil {
		if defaults == nil {
			e.function = &function{kind: api.KindDataHash, name: `yaml_data`}
		} else {
			e.function = defaults.Function()
		}
	} else if f, fc := e.function.Resolve(ic); fc {
		e.function = f
	}

	if e.function == nil {
		panic(fmt.Errorf(`one of %s must be defined in hierarchy '%s'`, keyList(FunctionKeys), e.name))
	}
}

func (e *entry) resolveDataDir(ic api.Invocation, defaults api.Entry) {
	e.resolveFunction(ic, defaults)
	if e.dataDir == `` {
		if defaults == nil {
			e.dataDir = defaultDataDir()
		} else {
			e.dataDir = defaults.DataDir()
		}
	} else {
		if d, dc := ic.InterpolateString(e.dataDir, false); dc {
			e.dataDir = fmt.Sprintf(`%v`, d)
		}
	}
}

func (e *entry) resolveOptions(ic api.Invocation, defaults api.Entry) {
	if e.options == nil {
		if defaults != nil {
			e.options = defaults.Options()
		}
	} else if len(e.options) > 0 {
		e.options = api.ToOptions(`entry options`, ic.Interpolate(map[string]any(e.options), false))
	}
	if e.options == nil {
		e.options = api.Options{}
	}
}

func (e *entry) resolveLocations(ic api.Invocation) {
	var dataRoot string
	if filepath.IsAbs(e.dataDir) {
		dataRoot = e.dataDir
	} else {
		dataRoot = filepath.Join(e.cfg.root, e.dataDir)
	}
	if e.locations != nil {
		ne := make([]api.Location, 0, len(e.locations))
		for _, l := range e.locations {
			ne = append(ne, l.Resolve(ic, dataRoot)...)
		}
		e.locations = ne
	}
}

func (e *entry) Resolve(ic api.Invocation, defaults api.Entry) api.Entry {
	// Resolve interpolated strings and locations
	ce := *e

	ce.resolveFunction(ic, defaults)
	ce.resolveDataDir(ic, defaults)
	ce.resolveOptions(ic, defaults)
	ce.resolveLocations(ic)

	return &ce
}
