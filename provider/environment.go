package provider

import (
	"os"
	"strings"

	"github.com/lyraproj/provide/api"
)

// Environment is a lookup_key function that resolves values from the current
// environment. The name can either be just `env` in which case all current
// environment variables are returned as a map, or prefixed with `env::` in
// which case the rest of the name is the environment variable to look for.
func Environment(_ api.ProviderContext, name string) (any, bool) {
	if name == `env` {
		env := os.Environ()
		em := make(map[string]any, len(env))
		for _, ev := range env {
			if ei := strings.IndexRune(ev, '='); ei > 0 {
				em[ev[:ei]] = ev[ei+1:]
			}
		}
		return em, true
	}
	if strings.HasPrefix(name, `env::`) {
		if v, ok := os.LookupEnv(name[5:]); ok {
			return v, true
		}
	}
	return nil, false
}
