package provider

import (
	"os"

	"github.com/lyraproj/provide/api"
	"gopkg.in/yaml.v3"
)

// YamlData is a data_hash function that reads a yaml hash from a file and
// returns it as a map
func YamlData(ctx api.ProviderContext) map[string]any {
	path, ok := ctx.StringOption(`path`)
	if !ok {
		panic(api.MissingRequiredOption(`path`))
	}
	bs, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]any{}
		}
		panic(err)
	}
	var v any
	if err = yaml.Unmarshal(bs, &v); err != nil {
		panic(err)
	}
	if v == nil {
		return map[string]any{}
	}
	if data, ok := v.(map[string]any); ok {
		return data
	}
	panic(api.YamlNotHash(path))
}
