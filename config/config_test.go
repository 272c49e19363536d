package config_test

import (
	"path/filepath"
	"testing"

	"github.com/lyraproj/provide/api"
	"github.com/lyraproj/provide/config"
	"github.com/stretchr/testify/require"
)

func configPath(name string) string {
	return filepath.Join(`testdata`, name)
}

func TestNew(t *testing.T) {
	cfg := config.New(configPath(`provide.yaml`))
	require.Equal(t, `testdata`, cfg.Root())
	require.Equal(t, configPath(`provide.yaml`), cfg.Path())

	df := cfg.Defaults()
	require.Equal(t, `data`, df.DataDir())
	require.Equal(t, api.KindDataHash, df.Function().Kind())
	require.Equal(t, `yaml_data`, df.Function().Name())

	hy := cfg.Hierarchy()
	require.Len(t, hy, 3)
	require.Equal(t, `Fine grained`, hy[0].Name())
	require.Len(t, hy[0].Locations(), 2)
	require.Equal(t, `special.yaml`, hy[0].Locations()[0].Original())
	require.Equal(t, api.LcPath, hy[0].Locations()[0].Kind())

	require.Equal(t, `By suffix`, hy[1].Name())
	require.Len(t, hy[1].Locations(), 1)
	require.Equal(t, api.LcGlob, hy[1].Locations()[0].Kind())
	require.False(t, hy[1].Locations()[0].Exists())

	require.Equal(t, `Secrets`, hy[2].Name())
	require.Equal(t, api.KindLookupKey, hy[2].Function().Kind())
	require.Equal(t, `azure_key_vault`, hy[2].Function().Name())
	require.Equal(t, `prod-vault`, hy[2].Options()[`vault_name`])

	dh := cfg.DefaultHierarchy()
	require.Len(t, dh, 1)
	require.Equal(t, `Defaults`, dh[0].Name())
}

func TestNew_missingFile(t *testing.T) {
	cfg := config.New(configPath(`nonexistent.yaml`))
	require.Equal(t, `testdata`, cfg.Root())
	require.Equal(t, ``, cfg.Path())
	require.Equal(t, api.KindDataHash, cfg.Defaults().Function().Kind())
	require.Equal(t, `yaml_data`, cfg.Defaults().Function().Name())

	hy := cfg.Hierarchy()
	require.Len(t, hy, 1)
	require.Equal(t, `Common`, hy[0].Name())
	require.Len(t, hy[0].Locations(), 1)
	require.Equal(t, `common.yaml`, hy[0].Locations()[0].Original())
	require.Empty(t, cfg.DefaultHierarchy())
}

func TestNew_badVersion(t *testing.T) {
	require.PanicsWithError(t,
		`'`+configPath(`badversion.yaml`)+`' version 4 is not supported, expected version 1`,
		func() { config.New(configPath(`badversion.yaml`)) })
}

func TestNew_duplicateName(t *testing.T) {
	require.PanicsWithError(t, `hierarchy name 'Common' defined more than once`,
		func() { config.New(configPath(`duplicatename.yaml`)) })
}

func TestNew_missingName(t *testing.T) {
	require.PanicsWithError(t, `all hierarchy entries must have a name`,
		func() { config.New(configPath(`missingname.yaml`)) })
}

func TestNew_multipleLocations(t *testing.T) {
	require.PanicsWithError(t, `only one of path, paths, glob, globs can be defined in hierarchy 'Common'`,
		func() { config.New(configPath(`multiplelocations.yaml`)) })
}

func TestNew_bothFunctions(t *testing.T) {
	require.PanicsWithError(t, `only one of data_hash, lookup_key can be defined in hierarchy 'Common'`,
		func() { config.New(configPath(`bothfunctions.yaml`)) })
}

func TestNew_reservedOption(t *testing.T) {
	require.PanicsWithError(t, `option key 'path' used in hierarchy 'Common' is reserved by provide`,
		func() { config.New(configPath(`reservedoption.yaml`)) })
}

func TestNew_namedDefaults(t *testing.T) {
	require.PanicsWithError(t, `the defaults entry cannot have a name`,
		func() { config.New(configPath(`nameddefaults.yaml`)) })
}

func TestNew_locationsInDefaults(t *testing.T) {
	require.PanicsWithError(t, `the defaults entry cannot define locations`,
		func() { config.New(configPath(`locationsindefaults.yaml`)) })
}

func TestNew_unknownKey(t *testing.T) {
	require.Panics(t, func() { config.New(configPath(`unknownkey.yaml`)) })
}
