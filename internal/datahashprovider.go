package internal

import (
	"fmt"
	"sync"

	"github.com/lyraproj/provide/api"
	"github.com/lyraproj/provide/merge"
	"github.com/lyraproj/provide/provider"
)

type dataHashProvider struct {
	hierarchyEntry api.Entry
	providerFunc   api.DataHash
	hashes         map[string]map[string]any
	hashesLock     sync.RWMutex
}

func (dh *dataHashProvider) Hierarchy() api.Entry {
	return dh.hierarchyEntry
}

func (dh *dataHashProvider) TryGetFor(req api.Request, ic api.Invocation) (any, bool) {
	if req.Name() == nil {
		return nil, false
	}
	return ic.MergeLocations(req, dh, currentStrategy(ic))
}

func (dh *dataHashProvider) TryGetAt(req api.Request, ic api.Invocation, location api.Location) (any, bool) {
	root := req.Name().Root()
	if value, ok := dh.dataValue(ic, location, root); ok {
		ic.ReportFound(root, value)
		return value, true
	}
	ic.ReportNotFound(root)
	return nil, false
}

func (dh *dataHashProvider) dataValue(ic api.Invocation, location api.Location, root string) (any, bool) {
	value, ok := dh.dataHash(ic, location)[root]
	if !ok || value == nil {
		return nil, false
	}
	return ic.Interpolate(value, true), true
}

func (dh *dataHashProvider) providerFunction(ic api.Invocation) api.DataHash {
	if dh.providerFunc == nil {
		dh.providerFunc = dh.loadFunction(ic)
	}
	return dh.providerFunc
}

func (dh *dataHashProvider) loadFunction(ic api.Invocation) api.DataHash {
	n := dh.hierarchyEntry.Function().Name()
	switch n {
	case `yaml_data`:
		return provider.YamlData
	case `json_data`:
		return provider.JSONData
	case `sql_data`:
		return provider.SQLData
	case `locale_data`:
		return provider.LocaleData
	}

	if fn, ok := ic.LoadFunction(dh.hierarchyEntry); ok {
		switch fn := fn.(type) {
		case api.DataHash:
			return fn
		case func(api.ProviderContext) map[string]any:
			return fn
		}
	}

	ic.ReportText(func() string { return fmt.Sprintf(`unresolved function '%s'`, n) })
	return func(pc api.ProviderContext) map[string]any {
		return map[string]any{}
	}
}

func (dh *dataHashProvider) dataHash(ic api.Invocation, location api.Location) map[string]any {
	key := ``
	opts := dh.hierarchyEntry.Options()
	if location != nil {
		key = location.Resolved()
		opts = optionsWithLocation(opts, key)
	}

	dh.hashesLock.RLock()
	hash, ok := dh.hashes[key]
	dh.hashesLock.RUnlock()
	if ok {
		return hash
	}

	dh.hashesLock.Lock()
	defer dh.hashesLock.Unlock()

	if hash, ok = dh.hashes[key]; ok {
		return hash
	}
	hash = dh.providerFunction(ic)(ic.ProviderContext(opts))
	dh.hashes[key] = hash
	return hash
}

func (dh *dataHashProvider) FullName() string {
	return fmt.Sprintf(`data_hash function '%s'`, dh.hierarchyEntry.Function().Name())
}

// NewDataHashProvider creates a new provider with a data_hash function configured
// from the given entry
func NewDataHashProvider(he api.Entry) api.DataProvider {
	return &dataHashProvider{hierarchyEntry: he, hashes: make(map[string]map[string]any, len(he.Locations()))}
}

func optionsWithLocation(options api.Options, loc string) api.Options {
	return options.Merge(api.Options{`path`: loc})
}

func currentStrategy(ic api.Invocation) api.MergeStrategy {
	if ms := ic.MergeStrategy(); ms != nil {
		return ms
	}
	return merge.GetStrategy(`first`, nil)
}
