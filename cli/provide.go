// Package cli contains the provide command line interface
package cli

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/lyraproj/provide/api"
	"github.com/lyraproj/provide/config"
	"github.com/lyraproj/provide/provide"
	"github.com/lyraproj/provide/provider"
	"github.com/spf13/cobra"
)

var helpTemplate = `Description:
  {{rpad .Long 10}}

Usage:{{if .Runnable}}{{if .HasAvailableFlags}}
  {{appendIfNotPresent .UseLine "[flags]"}}{{else}}{{.UseLine}}{{end}}{{end}}{{if gt .Aliases 0}}

Aliases:
  {{.NameAndAliases}}{{end}}{{if .HasExample }}

Examples:
  {{ .Example }}{{end}}{{ if .HasAvailableSubCommands}}

Available Commands:{{range .Commands}}{{if .IsAvailableCommand}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{ if .HasAvailableLocalFlags}}

Flags:
{{.LocalFlags.FlagUsages | trimRightSpace}}{{end}}{{ if .HasAvailableInheritedFlags}}

Global Flags:
{{.InheritedFlags.FlagUsages | trimRightSpace}}{{end}}{{if .HasHelpSubCommands}}

Additional help topics:{{range .Commands}}{{if .IsHelpCommand}}
{{rpad .CommandPath .CommandPathPadding}} {{.Short}}{{end}}{{end}}{{end}}
`

// OptString is a string option that can differentiate between an empty string and no value
type OptString struct {
	value *string
}

// Type of option
func (s *OptString) Type() string {
	return "stringpointer"
}

// String value
func (s *OptString) String() string {
	if s == nil || s.value == nil {
		return ``
	}
	return *s.value
}

// Set sets the string value
func (s *OptString) Set(v string) error {
	s.value = &v
	return nil
}

// StringPointer returns the internal value pointer
func (s *OptString) StringPointer() *string {
	return s.value
}

var (
	cmdOpts    provide.CommandOptions
	dflt       OptString
	logLevel   string
	configPath string
)

// NewCommand creates the provide Command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "provide <name> [<name> ...]",
		Short: `Provide - resolve named and typed values from configured providers`,
		Long: `Provide - resolve named and typed values from configured providers.
    Find more information at: https://github.com/lyraproj/provide`,
		Version: fmt.Sprintf("%v", getVersion()),
		PreRun:  initialize,
		RunE:    cmdLookup,
		Args:    cobra.MinimumNArgs(1)}

	flags := cmd.Flags()
	flags.StringVar(&logLevel, `loglevel`, `error`,
		`error/warn/info/debug`)
	flags.StringVar(&cmdOpts.Merge, `merge`, `first`,
		`first/unique/hash/deep`)
	flags.StringVar(&configPath, `config`, ``,
		`path to the provide config file. Overrides <current directory>/`+config.FileName)
	flags.Var(&dflt, `default`,
		`a value to return if provide can't find a value in data`)
	flags.StringVar(&cmdOpts.Type, `type`, ``,
		`assert that the value has the specified type (if using --all this must be a map)`)
	flags.StringVar(&cmdOpts.RenderAs, `render-as`, ``,
		`s/json/yaml/binary: Specify the output format of the results; s means plain text`)
	flags.BoolVar(&cmdOpts.ExplainData, `explain`, false,
		`Explain the details of how the lookup was performed and where the final value came from`)
	flags.StringArrayVar(&cmdOpts.VarPaths, `vars`, nil,
		`path to a YAML or JSON file that contains key-value mappings to become variables for this lookup`)
	flags.StringArrayVar(&cmdOpts.Variables, `var`, nil,
		`a key:value or key=value where value is a literal expressed in YAML syntax`)
	flags.StringVar(&cmdOpts.Client, `client`, ``,
		`name of the client on whose behalf the lookup is performed`)
	flags.BoolVar(&cmdOpts.LookupAll, `all`, false,
		`lookup all of the names and output the results as a map`)

	cmd.SetHelpTemplate(helpTemplate)
	return cmd
}

func initialize(_ *cobra.Command, _ []string) {
	hclog.DefaultOptions = &hclog.LoggerOptions{
		Name:  `provide`,
		Level: hclog.LevelFromString(logLevel),
	}
}

func cmdLookup(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmdOpts.Default = dflt.StringPointer()
	cfgOpts := api.Options{
		api.ProvideLogLevel: logLevel,
		provider.ProvidersKey: []api.Provider{
			provider.Config,
			provider.FromLookupKey(`environment`, provider.Environment, nil)}}

	if configPath != `` {
		cfgOpts[api.ProvideConfig] = configPath
	}

	return provide.TryWithParent(context.Background(), provider.Mux, cfgOpts, func(s api.Session) error {
		provide.LookupAndRender(s, &cmdOpts, args, cmd.OutOrStdout())
		return nil
	})
}
