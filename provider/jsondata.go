package provider

import (
	"encoding/json"
	"os"

	"github.com/lyraproj/provide/api"
)

// JSONData is a data_hash function that reads a JSON object from a file and
// returns it as a map
func JSONData(ctx api.ProviderContext) map[string]any {
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
	if err = json.Unmarshal(bs, &v); err != nil {
		panic(err)
	}
	if data, ok := v.(map[string]any); ok {
		return data
	}
	panic(api.JSONNotHash(path))
}
