package provider_test

import (
	"context"
	"testing"

	"github.com/lyraproj/provide/api"
	"github.com/lyraproj/provide/provide"
	"github.com/lyraproj/provide/provider"
	"github.com/stretchr/testify/require"
)

var localeOptions = api.Options{
	`pattern`: `testdata/strings_*.yaml`,
	`locales`: []any{`en`, `sv`, `de`},
}

func localeData(hs api.Session, locale string) map[string]any {
	var scope map[string]any
	if locale != `` {
		scope = map[string]any{`locale`: locale}
	}
	return provider.LocaleData(hs.Invocation(nil, scope, nil).ProviderContext(localeOptions))
}

func TestLocaleData(t *testing.T) {
	provide.DoWithParent(context.Background(), provider.Mux, nil, func(hs api.Session) {
		require.Equal(t, `hej`, localeData(hs, `sv`)[`greeting`])
		require.Equal(t, `hallo`, localeData(hs, `de`)[`greeting`])
		require.Equal(t, `hello`, localeData(hs, `en-US`)[`greeting`])

		// the first configured locale is the fallback
		require.Equal(t, `hello`, localeData(hs, ``)[`greeting`])
		require.Equal(t, `hello`, localeData(hs, `fr`)[`greeting`])
	})
}

func TestLocaleData_badOptions(t *testing.T) {
	provide.DoWithParent(context.Background(), provider.Mux, nil, func(hs api.Session) {
		iv := hs.Invocation(nil, nil, nil)
		require.PanicsWithError(t, `missing required provider option 'pattern'`, func() {
			provider.LocaleData(iv.ProviderContext(nil))
		})
		require.PanicsWithError(t, `missing required provider option 'locales'`, func() {
			provider.LocaleData(iv.ProviderContext(api.Options{`pattern`: `strings_*.yaml`}))
		})
		require.PanicsWithError(t, `option 'locales' must be a non empty array of language tags`, func() {
			provider.LocaleData(iv.ProviderContext(api.Options{`pattern`: `strings_*.yaml`, `locales`: []any{}}))
		})
		require.Panics(t, func() {
			provider.LocaleData(iv.ProviderContext(api.Options{`pattern`: `strings_*.yaml`, `locales`: []any{`no such tag`}}))
		})
	})
}

func TestLocaleData_configured(t *testing.T) {
	tp := provider.FromDataHash(`locale_data`, provider.LocaleData, localeOptions)
	provide.DoWithParent(context.Background(), tp, nil, func(hs api.Session) {
		iv := hs.Invocation(nil, map[string]any{`locale`: `sv`}, nil)
		v, ok := provide.Lookup[string](iv, `farewell`, nil)
		require.True(t, ok)
		require.Equal(t, `hej då`, v)
	})
}
