package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/hashicorp/go-hclog"
	"github.com/lyraproj/provide/api"
	"github.com/lyraproj/provide/config"
	"github.com/lyraproj/provide/provider"
)

type session struct {
	context.Context
	vars   map[string]any
	scope  api.Scope
	logger hclog.Logger
}

const provideCacheKey = `Provide::Cache`
const provideTopProviderKey = `Provide::TopProvider`
const provideSessionOptionsKey = `Provide::SessionOptions`
const provideTopProviderCacheKey = `Provide::TopProvider::Cache`

// New creates a new Session which, among other things, holds on to a synchronized
// cache where all loaded things end up.
//
// parent: typically obtained using context.Background() but can be any context.
//
// topProvider: the topmost provider that is consulted by every resolution, or nil
// to get the configuration driven provider
//
// options: an api.Options or map[string]any with session options
func New(parent context.Context, topProvider api.Provider, options any) api.Session {
	if topProvider == nil {
		topProvider = provider.Config
	}

	sessionOptions := api.Options{}
	if options != nil {
		sessionOptions = sessionOptions.Merge(api.ToOptions(`session options`, options))
	}

	if sessionOptions[api.ProvideConfig] == nil {
		addProvideConfig(sessionOptions)
	}

	scope := api.ToScope(`session scope`, sessionOptions[api.ProvideScope])

	vars := map[string]any{
		provideCacheKey:            &sync.Map{},
		provideTopProviderKey:      topProvider,
		provideTopProviderCacheKey: &sync.Map{},
		provideSessionOptionsKey:   sessionOptions}

	return &session{Context: parent, vars: vars, scope: scope, logger: createLogger(sessionOptions)}
}

func addProvideConfig(options api.Options) {
	var provideRoot string
	if r, ok := options[api.ProvideRoot]; ok {
		provideRoot = r.(string)
	} else {
		var err error
		if provideRoot, err = os.Getwd(); err != nil {
			panic(err)
		}
	}

	var fileName string
	if r, ok := options[api.ProvideConfigFileName]; ok {
		fileName = r.(string)
	} else if configFile, ok := os.LookupEnv(`PROVIDE_CONFIGFILE`); ok {
		fileName = configFile
	} else {
		fileName = config.FileName
	}
	options[api.ProvideConfig] = filepath.Join(provideRoot, fileName)
}

func createLogger(options api.Options) hclog.Logger {
	if lg, ok := options[api.ProvideLogger].(hclog.Logger); ok {
		return lg
	}
	level := hclog.Error
	if ls, ok := options[api.ProvideLogLevel].(string); ok {
		if pl := hclog.LevelFromString(ls); pl != hclog.NoLevel {
			level = pl
		}
	}
	return hclog.New(&hclog.LoggerOptions{Name: `provide`, Level: level})
}

func (s *session) Invocation(client api.Client, si any, explainer api.Explainer) api.Invocation {
	var scope api.Scope
	if si == nil {
		scope = s.Scope()
	} else {
		scope = &nestedScope{s.Scope(), api.ToScope(`invocation scope`, si)}
	}
	return newInvocation(s, client, scope, explainer)
}

func (s *session) LoadFunction(he api.Entry) (fn any, ok bool) {
	n := he.Function().Name()
	switch m := s.SessionOptions()[api.ProvideFunctions].(type) {
	case api.Options:
		fn, ok = m[n]
	case map[string]any:
		fn, ok = m[n]
	}
	return
}

func (s *session) Logger() hclog.Logger {
	return s.logger
}

func (s *session) Scope() api.Scope {
	return s.scope
}

func (s *session) Get(key string) any {
	return s.vars[key]
}

func (s *session) TopProvider() api.Provider {
	if v, ok := s.Get(provideTopProviderKey).(api.Provider); ok {
		return v
	}
	panic(notInitialized())
}

func (s *session) TopProviderCache() *sync.Map {
	if v, ok := s.Get(provideTopProviderCacheKey).(*sync.Map); ok {
		return v
	}
	panic(notInitialized())
}

func (s *session) SessionOptions() api.Options {
	if v, ok := s.Get(provideSessionOptionsKey).(api.Options); ok {
		return v
	}
	panic(notInitialized())
}

func notInitialized() error {
	return errors.New(`session is not initialized`)
}

func (s *session) SharedCache() *sync.Map {
	if v, ok := s.Get(provideCacheKey).(*sync.Map); ok {
		return v
	}
	panic(notInitialized())
}
