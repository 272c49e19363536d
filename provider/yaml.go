package provider

import (
	"github.com/lyraproj/provide/api"
)

// YamlDataKey is the key that the Yaml provider uses for its cache.
const YamlDataKey = `yaml::data`

type yamlProvider struct {
	path string
}

// Yaml returns a Provider that answers named requests from the hash read from
// the given yaml file. The hash is read once per session and cached. It is
// mainly intended for testing purposes but can also be used as a complete
// replacement of a configured setup.
func Yaml(path string) api.Provider {
	return &yamlProvider{path: path}
}

func (p *yamlProvider) FullName() string {
	return `yaml file '` + p.path + `'`
}

func (p *yamlProvider) TryGetFor(req api.Request, ic api.Invocation) (any, bool) {
	if req.Name() == nil {
		return nil, false
	}
	pc := ic.ProviderContext(api.Options{`path`: p.path})
	data, ok := pc.CachedValue(YamlDataKey + `::` + p.path)
	if !ok {
		data = YamlData(pc)
		pc.Cache(YamlDataKey+`::`+p.path, data)
	}
	v, ok := data.(map[string]any)[req.Name().Root()]
	if !ok || v == nil {
		return nil, false
	}
	return ic.Interpolate(v, true), true
}
