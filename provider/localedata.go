package provider

import (
	"fmt"
	"os"
	"strings"

	"github.com/lyraproj/provide/api"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// LocaleData is a data_hash function that serves values from a per language yaml
// file. The file is chosen by matching the `locale` scope variable against the
// tags in the required `locales` option using BCP 47 matching. The required
// `pattern` option names the file with a `*` placeholder for the matched tag.
func LocaleData(ctx api.ProviderContext) map[string]any {
	pattern, ok := ctx.StringOption(`pattern`)
	if !ok {
		panic(api.MissingRequiredOption(`pattern`))
	}
	lv, ok := ctx.Option(`locales`)
	if !ok {
		panic(api.MissingRequiredOption(`locales`))
	}
	ls, ok := lv.([]any)
	if !ok || len(ls) == 0 {
		panic(fmt.Errorf(`option 'locales' must be a non empty array of language tags`))
	}

	tags := make([]language.Tag, len(ls))
	for i, l := range ls {
		tag, err := language.Parse(fmt.Sprintf(`%v`, l))
		if err != nil {
			panic(fmt.Errorf(`option 'locales' contains malformed language tag '%v': %s`, l, err))
		}
		tags[i] = tag
	}

	matcher := language.NewMatcher(tags)
	ix := 0
	if rv, ok := ctx.Invocation().Scope().Get(`locale`); ok {
		if requested, err := language.Parse(fmt.Sprintf(`%v`, rv)); err == nil {
			_, ix, _ = matcher.Match(requested)
		}
	}
	path := strings.Replace(pattern, `*`, fmt.Sprintf(`%v`, ls[ix]), 1)

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
	if data, ok := v.(map[string]any); ok {
		return data
	}
	panic(api.YamlNotHash(path))
}
