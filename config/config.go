// Package config contains the code to load and resolve the provide configuration
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lyraproj/provide/api"
	"gopkg.in/yaml.v3"
)

type (
	provideCfg struct {
		root             string
		path             string
		defaults         *entry
		hierarchy        []api.Entry
		defaultHierarchy []api.Entry
	}

	rawEntry struct {
		Name      string         `yaml:"name"`
		Options   map[string]any `yaml:"options"`
		DataHash  string         `yaml:"data_hash"`
		LookupKey string         `yaml:"lookup_key"`
		DataDir   string         `yaml:"datadir"`
		Path      string         `yaml:"path"`
		Paths     []string       `yaml:"paths"`
		Glob      string         `yaml:"glob"`
		Globs     []string       `yaml:"globs"`
	}

	rawConfig struct {
		Version          int        `yaml:"version"`
		Defaults         *rawEntry  `yaml:"defaults"`
		Hierarchy        []rawEntry `yaml:"hierarchy"`
		DefaultHierarchy []rawEntry `yaml:"default_hierarchy"`
	}
)

// FileName is the default file name for the provide configuration file.
const FileName = `provide.yaml`

// Version is the configuration format version that this release understands.
const Version = 1

// New creates a new unresolved Config from the given path. If the path does not exist, the
// default config is returned.
func New(configPath string) api.Config {
	content, err := os.ReadFile(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			panic(err)
		}
		dc := &provideCfg{
			root:             filepath.Dir(configPath),
			path:             ``,
			defaultHierarchy: []api.Entry{},
		}
		dc.defaults = dc.makeDefaultConfig()
		dc.hierarchy = dc.makeDefaultHierarchy()
		return dc
	}

	raw := &rawConfig{Version: Version}
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err = dec.Decode(raw); err != nil {
		panic(fmt.Errorf(`unable to load '%s': %s`, configPath, err))
	}
	if raw.Version != Version {
		panic(fmt.Errorf(`'%s' version %d is not supported, expected version %d`, configPath, raw.Version, Version))
	}

	return createConfig(configPath, raw)
}

func createConfig(path string, raw *rawConfig) api.Config {
	hc := &provideCfg{root: filepath.Dir(path), path: path}

	if raw.Defaults != nil {
		hc.defaults = hc.createDefaultsEntry(raw.Defaults)
	} else {
		hc.defaults = hc.makeDefaultConfig()
	}

	if raw.Hierarchy != nil {
		hc.hierarchy = hc.createHierarchy(raw.Hierarchy)
	} else {
		hc.hierarchy = hc.makeDefaultHierarchy()
	}

	if raw.DefaultHierarchy != nil {
		hc.defaultHierarchy = hc.createHierarchy(raw.DefaultHierarchy)
	}

	return hc
}

func defaultDataDir() string {
	dataDir, exists := os.LookupEnv(`PROVIDE_DATADIR`)
	if !exists {
		dataDir = `data`
	}
	return dataDir
}

func (hc *provideCfg) makeDefaultConfig() *entry {
	return &entry{
		cfg:      hc,
		dataDir:  defaultDataDir(),
		function: &function{kind: api.KindDataHash, name: `yaml_data`},
	}
}

// The default behavior is to look for <root>/data/common.yaml
func (hc *provideCfg) makeDefaultHierarchy() []api.Entry {
	return []api.Entry{&entry{cfg: hc, name: `Common`, locations: []api.Location{NewPath(`common.yaml`)}}}
}

func (hc *provideCfg) Hierarchy() []api.Entry {
	return hc.hierarchy
}

func (hc *provideCfg) DefaultHierarchy() []api.Entry {
	return hc.defaultHierarchy
}

func (hc *provideCfg) Root() string {
	return hc.root
}

func (hc *provideCfg) Path() string {
	return hc.path
}

func (hc *provideCfg) Defaults() api.Entry {
	return hc.defaults
}

func (hc *provideCfg) createDefaultsEntry(re *rawEntry) *entry {
	if re.Name != `` {
		panic(fmt.Errorf(`the defaults entry cannot have a name`))
	}
	if re.Path != `` || len(re.Paths) > 0 || re.Glob != `` || len(re.Globs) > 0 {
		panic(fmt.Errorf(`the defaults entry cannot define locations`))
	}
	return hc.createEntry(`defaults`, re).(*entry)
}

func (hc *provideCfg) createHierarchy(hierarchy []rawEntry) []api.Entry {
	entries := make([]api.Entry, 0, len(hierarchy))
	uniqueNames := make(map[string]bool, len(hierarchy))
	for i := range hierarchy {
		re := &hierarchy[i]
		if re.Name == `` {
			panic(fmt.Errorf(`all hierarchy entries must have a name`))
		}
		if uniqueNames[re.Name] {
			panic(fmt.Errorf(`hierarchy name '%s' defined more than once`, re.Name))
		}
		uniqueNames[re.Name] = true
		entries = append(entries, hc.createEntry(re.Name, re))
	}
	return entries
}

func (hc *provideCfg) createEntry(name string, re *rawEntry) api.Entry {
	entry := &entry{cfg: hc, name: name, dataDir: re.DataDir}
	entry.initialize(name, re)

	addLocations := func(ls ...api.Location) {
		if entry.locations != nil {
			panic(fmt.Errorf(`only one of %s can be defined in hierarchy '%s'`, keyList(LocationKeys), name))
		}
		entry.locations = ls
	}
	if re.Path != `` {
		addLocations(NewPath(re.Path))
	}
	if len(re.Paths) > 0 {
		ls := make([]api.Location, len(re.Paths))
		for i, p := range re.Paths {
			ls[i] = NewPath(p)
		}
		addLocations(ls...)
	}
	if re.Glob != `` {
		addLocations(NewGlob(re.Glob))
	}
	if len(re.Globs) > 0 {
		ls := make([]api.Location, len(re.Globs))
		for i, g := range re.Globs {
			ls[i] = NewGlob(g)
		}
		addLocations(ls...)
	}
	return entry
}
