// Package api contains interfaces that are used throughout the provide code base
package api

// ProvideRoot is an option key that can be used to change the default root which is the current working directory
const ProvideRoot = `Provide::Root`

// ProvideConfigFileName is an option that can be used to change the default file name 'provide.yaml'
const ProvideConfigFileName = `Provide::ConfigFileName`

// ProvideConfig is an option that can be used to change the absolute path of the provide config. When specified, the
// ProvideRoot and ProvideConfigFileName will not have any effect.
const ProvideConfig = `Provide::Config`

// ProvideScope is an option that can be used to pass a variable scope to the session. This scope is used
// by the 'scope' lookup_key provider function and when doing variable interpolations
const ProvideScope = `Provide::Scope`

// ProvideFunctions is an option that can be used to pass custom lookup functions to the session. The value
// must be a map with string keys and DataHash or LookupKey values.
const ProvideFunctions = `Provide::Functions`

// ProvideLogLevel is an option that controls the level of the session logger. Valid values are the
// level names accepted by hclog
const ProvideLogLevel = `Provide::LogLevel`

// ProvideLogger is an option that can be used to pass a preconfigured hclog.Logger to the session. When
// specified, the ProvideLogLevel option has no effect.
const ProvideLogger = `Provide::Logger`
