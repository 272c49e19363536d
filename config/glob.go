package config

import (
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/lyraproj/provide/api"
)

type glob string

// NewGlob returns a glob Location
func NewGlob(pattern string) api.Location {
	return glob(pattern)
}

func (g glob) Exists() bool {
	return false
}

func (g glob) Kind() api.LocationKind {
	return api.LcGlob
}

func (g glob) String() string {
	return fmt.Sprintf("glob{pattern:%s}", g.Original())
}

func (g glob) Original() string {
	return string(g)
}

func (g glob) Resolve(ic api.Invocation, dataDir string) []api.Location {
	r, _ := ic.InterpolateString(g.Original(), false)
	rp := filepath.Join(dataDir, fmt.Sprintf(`%v`, r))
	matches, _ := doublestar.FilepathGlob(rp)
	ls := make([]api.Location, len(matches))
	for i, m := range matches {
		ls[i] = &path{g.Original(), m, true}
	}
	return ls
}

func (g glob) Resolved() string {
	// This should never happen.
	panic(fmt.Errorf(`resolved requested on a glob`))
}
