package session

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/lyraproj/provide/api"
	"github.com/lyraproj/provide/coerce"
	"github.com/lyraproj/provide/config"
	"github.com/lyraproj/provide/merge"
)

const provideConfigsPrefix = `ProvideConfig:`
const provideLockPrefix = `ProvideLock:`

type ivContext struct {
	api.Session
	client    api.Client
	nameStack []string
	scope     api.Scope
	callOpts  api.Options
	strategy  api.MergeStrategy
	configs   map[string]api.ResolvedConfig
	explainer api.Explainer
	redacted  bool
}

type nestedScope struct {
	parentScope api.Scope
	scope       api.Scope
}

func newInvocation(s api.Session, client api.Client, scope api.Scope, explainer api.Explainer) api.Invocation {
	return &ivContext{
		Session:   s,
		client:    client,
		nameStack: []string{},
		scope:     scope,
		configs:   map[string]api.ResolvedConfig{},
		explainer: explainer}
}

func (ns *nestedScope) Get(name string) (any, bool) {
	if v, ok := ns.scope.Get(name); ok {
		return v, true
	}
	return ns.parentScope.Get(name)
}

func (ic *ivContext) Client() api.Client {
	return ic.client
}

func (ic *ivContext) CallOptions() api.Options {
	if ic.callOpts == nil {
		return api.Options{}
	}
	return ic.callOpts
}

func (ic *ivContext) Config(configPath string) api.ResolvedConfig {
	sc := ic.SharedCache()
	if configPath == `` {
		configPath = fmt.Sprintf(`%v`, ic.SessionOptions()[api.ProvideConfig])
	}

	if rc, ok := ic.configs[configPath]; ok {
		return rc
	}

	cp := provideConfigsPrefix + configPath
	if val, ok := sc.Load(cp); ok {
		rc := Resolve(ic, val.(api.Config))
		ic.configs[configPath] = rc
		return rc
	}

	lc := provideLockPrefix + configPath

	myLock := sync.RWMutex{}
	myLock.Lock()

	var conf api.Config
	if lv, loaded := sc.LoadOrStore(lc, &myLock); loaded {
		// myLock was not stored so unlock it
		myLock.Unlock()

		if lock, ok := lv.(*sync.RWMutex); ok {
			// The loaded value is a lock. Wait for the config to be stored in place of
			// this lock
			lock.RLock()
			val, _ := sc.Load(cp)
			conf = val.(api.Config)
			lock.RUnlock()
		} else {
			conf = lv.(api.Config)
		}
	} else {
		conf = config.New(configPath)
		sc.Store(cp, conf)
		myLock.Unlock()
	}
	rc := Resolve(ic, conf)
	ic.configs[configPath] = rc
	return rc
}

func (ic *ivContext) ExplainMode() bool {
	return ic.explainer != nil
}

func (ic *ivContext) SetMergeStrategy(mergeOption any, entryOptions api.Options) {
	var opts any
	if mergeOption != nil {
		ic.ReportMergeSource(`call option`)
		opts = mergeOption
	} else if entryOptions != nil {
		if opts = entryOptions[`merge`]; opts != nil {
			ic.ReportMergeSource(`hierarchy defaults`)
		}
	}

	var mergeName string
	var mergeOpts api.Options
	switch opts := opts.(type) {
	case string:
		mergeName = opts
	case api.Options:
		mergeName, mergeOpts = mergeFromMap(opts)
	case map[string]any:
		mergeName, mergeOpts = mergeFromMap(opts)
	default:
		mergeName = `first`
	}
	ic.strategy = merge.GetStrategy(mergeName, mergeOpts)
}

func mergeFromMap(m api.Options) (string, api.Options) {
	mn, ok := m[`strategy`].(string)
	if !ok {
		return `first`, nil
	}
	mo := make(api.Options, len(m))
	for k, v := range m {
		if k != `strategy` {
			mo[k] = v
		}
	}
	return mn, mo
}

func (ic *ivContext) MergeHierarchy(req api.Request, pvs []api.DataProvider, ms api.MergeStrategy) (any, bool) {
	return ms.MergeLookup(pvs, ic, func(pv any) (any, bool) {
		return ic.MergeLocations(req, pv.(api.DataProvider), ms)
	})
}

func (ic *ivContext) MergeLocations(req api.Request, dh api.DataProvider, ms api.MergeStrategy) (any, bool) {
	return ic.WithDataProvider(dh, func() (any, bool) {
		locations := dh.Hierarchy().Locations()
		switch len(locations) {
		case 0:
			if locations == nil {
				return ic.invokeWithLocation(dh, nil, req)
			}
			return nil, false // glob resulted in zero entries
		case 1:
			return ic.invokeWithLocation(dh, locations[0], req)
		default:
			return ms.MergeLookup(locations, ic, func(location any) (any, bool) {
				return ic.invokeWithLocation(dh, location.(api.Location), req)
			})
		}
	})
}

func (ic *ivContext) invokeWithLocation(dh api.DataProvider, location api.Location, req api.Request) (any, bool) {
	if location == nil {
		return dh.TryGetAt(req, ic, nil)
	}
	return ic.WithLocation(location, func() (any, bool) {
		if location.Exists() {
			return dh.TryGetAt(req, ic, location)
		}
		ic.ReportLocationNotFound()
		return nil, false
	})
}

// Lookup resolves the given request. The top provider is consulted for the root of
// the request name, remaining segments are resolved by digging into the value that
// it produced, and the result is coerced to the requested type.
func (ic *ivContext) Lookup(req api.Request, options api.Options) (any, bool) {
	return ic.WithRequest(req, func() (any, bool) {
		prev := ic.callOpts
		ic.callOpts = options
		defer func() {
			ic.callOpts = prev
		}()

		v, ok := ic.TopProvider().TryGetFor(req, ic)
		if ok && req.Name() != nil {
			v, ok = req.Name().Dig(ic, v)
		}
		if !ok {
			return nil, false
		}
		cv, err := coerce.To(v, req.Type())
		if err != nil {
			panic(fmt.Errorf(`lookup %s: %s`, req, err))
		}
		return cv, true
	})
}

func (ic *ivContext) WithRequest(req api.Request, f api.Producer) (any, bool) {
	source := req.String()
	if slices.Contains(ic.nameStack, source) {
		panic(fmt.Errorf(`recursive lookup detected in [%s]`, strings.Join(ic.nameStack, `, `)))
	}
	ic.nameStack = append(ic.nameStack, source)
	defer func() {
		ic.nameStack = ic.nameStack[:len(ic.nameStack)-1]
	}()
	return f()
}

func (ic *ivContext) DoRedacted(doer func()) {
	if ic.redacted {
		doer()
	} else {
		defer func() {
			ic.redacted = false
		}()
		ic.redacted = true
		doer()
	}
}

func (ic *ivContext) DoWithScope(scope api.Scope, doer func()) {
	sc := ic.scope
	ic.scope = scope
	doer()
	ic.scope = sc
}

func (ic *ivContext) Scope() api.Scope {
	return ic.scope
}

// ProviderContext creates and returns a new provider context
func (ic *ivContext) ProviderContext(options api.Options) api.ProviderContext {
	return &providerCtx{options: options, invocation: ic}
}

func (ic *ivContext) WithDataProvider(p api.DataProvider, f api.Producer) (any, bool) {
	if ic.explainer == nil {
		return f()
	}
	defer ic.explainer.Pop()
	ic.explainer.PushDataProvider(p)
	return f()
}

func (ic *ivContext) WithInterpolation(expr string, f api.Producer) (any, bool) {
	if ic.explainer == nil {
		return f()
	}
	defer ic.explainer.Pop()
	ic.explainer.PushInterpolation(expr)
	return f()
}

func (ic *ivContext) WithLocation(loc api.Location, f api.Producer) (any, bool) {
	if ic.explainer == nil {
		return f()
	}
	defer ic.explainer.Pop()
	ic.explainer.PushLocation(loc)
	return f()
}

func (ic *ivContext) WithLookup(req api.Request, f api.Producer) (any, bool) {
	if ic.explainer == nil {
		return f()
	}
	defer ic.explainer.Pop()
	ic.explainer.PushLookup(req)
	return f()
}

func (ic *ivContext) WithMerge(ms api.MergeStrategy, f api.Producer) (any, bool) {
	if ic.explainer == nil {
		return f()
	}
	defer ic.explainer.Pop()
	ic.explainer.PushMerge(ms)
	return f()
}

func (ic *ivContext) WithSegment(seg any, f api.Producer) (any, bool) {
	if ic.explainer == nil {
		return f()
	}
	defer ic.explainer.Pop()
	ic.explainer.PushSegment(seg)
	return f()
}

func (ic *ivContext) WithSubLookup(name api.Name, f api.Producer) (any, bool) {
	if ic.explainer == nil {
		return f()
	}
	defer ic.explainer.Pop()
	ic.explainer.PushSubLookup(name)
	return f()
}

func (ic *ivContext) ForConfig() api.Invocation {
	if ic.explainer == nil {
		return ic
	}
	lic := *ic
	lic.explainer = nil
	return &lic
}

func (ic *ivContext) MergeStrategy() api.MergeStrategy {
	return ic.strategy
}

func (ic *ivContext) ReportLocationNotFound() {
	if ic.explainer != nil {
		ic.explainer.AcceptLocationNotFound()
	}
}

func (ic *ivContext) ReportFound(key any, value any) {
	if ic.explainer != nil {
		if ic.redacted {
			value = api.NewSensitive(value)
		}
		ic.explainer.AcceptFound(key, value)
	}
}

func (ic *ivContext) ReportMergeResult(value any) {
	if ic.explainer != nil {
		if ic.redacted {
			value = api.NewSensitive(value)
		}
		ic.explainer.AcceptMergeResult(value)
	}
}

func (ic *ivContext) ReportMergeSource(source string) {
	if ic.explainer != nil {
		ic.explainer.AcceptMergeSource(source)
	}
}

func (ic *ivContext) ReportNotFound(key any) {
	if ic.explainer != nil {
		ic.explainer.AcceptNotFound(key)
	}
}

func (ic *ivContext) ReportText(messageProducer func() string) {
	if ic.explainer != nil {
		ic.explainer.AcceptText(messageProducer())
	}
}
