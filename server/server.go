// Package server contains the provide REST server
package server

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/caarlos0/env/v11"
	"github.com/hashicorp/go-hclog"
	"github.com/labstack/echo/v4"
	"github.com/lyraproj/provide/api"
	"github.com/lyraproj/provide/provide"
	"github.com/lyraproj/provide/provider"
	"github.com/spf13/cobra"
)

// A Config contains the runtime defaults of the server. The defaults are read
// from the environment and can be overridden with command line flags
type Config struct {
	// Addr is the ip address to listen on
	Addr string `env:"PROVIDE_ADDR"`

	// Port is the port number to listen to
	Port int `env:"PROVIDE_PORT" envDefault:"8080"`

	// ConfigPath is the path to the provide config file
	ConfigPath string `env:"PROVIDE_CONFIG"`

	// LogLevel is the level of the server logger
	LogLevel string `env:"PROVIDE_LOGLEVEL" envDefault:"error"`

	// SSLCert and SSLKey hold the certificate pair that enables TLS
	SSLCert string `env:"PROVIDE_SSL_CERT"`
	SSLKey  string `env:"PROVIDE_SSL_KEY"`

	// ClientCA is a certificate authority used to verify clients
	ClientCA string `env:"PROVIDE_CLIENT_CA"`

	// ClientCertVerify requires clients to present a verified certificate
	ClientCertVerify bool `env:"PROVIDE_CLIENT_CERT_VERIFY"`
}

var (
	cmdOpts provide.CommandOptions
	cfg     Config
)

// NewCommand creates the provide server Command
func NewCommand() *cobra.Command {
	cfg = Config{}
	if err := env.Parse(&cfg); err != nil {
		panic(fmt.Errorf(`parse env: %s`, err))
	}

	cmd := &cobra.Command{
		Use:   "provide-server",
		Short: `Server - Start a provide REST server`,
		Long: `Server - Start a REST server that resolves values from configured providers.
  Responds to name lookups under the /lookup endpoint`,
		PreRun: initialize,
		Run:    startServer,
		Args:   cobra.NoArgs}

	flags := cmd.Flags()
	flags.StringVar(&cfg.LogLevel, `loglevel`, cfg.LogLevel,
		`error/warn/info/debug`)
	flags.StringVar(&cfg.ConfigPath, `config`, cfg.ConfigPath,
		`path to the provide config file. Overrides <current directory>/provide.yaml`)
	flags.StringArrayVar(&cmdOpts.VarPaths, `vars`, nil,
		`path to a YAML or JSON file that contains key-value mappings to become variables for this lookup`)
	flags.StringArrayVar(&cmdOpts.Variables, `var`, nil,
		`a key:value or key=value where value is a literal expressed in YAML syntax`)
	flags.StringVar(&cfg.Addr, `addr`, cfg.Addr, `ip address to listen on`)
	flags.IntVar(&cfg.Port, `port`, cfg.Port, `port number to listen to`)
	flags.StringVar(&cfg.SSLKey, `ssl-key`, cfg.SSLKey, `ssl private key`)
	flags.StringVar(&cfg.SSLCert, `ssl-cert`, cfg.SSLCert, `ssl certificate`)
	flags.StringVar(&cfg.ClientCA, `ca`, cfg.ClientCA, `certificate authority to use to verify clients`)
	flags.BoolVar(&cfg.ClientCertVerify, `clientCertVerify`, cfg.ClientCertVerify, `verify client certificate`)
	return cmd
}

func initialize(_ *cobra.Command, _ []string) {
	hclog.DefaultOptions = &hclog.LoggerOptions{
		Name:  `provide`,
		Level: hclog.LevelFromString(cfg.LogLevel),
	}
}

func startServer(cmd *cobra.Command, _ []string) {
	sessionOptions := api.Options{
		api.ProvideLogLevel: cfg.LogLevel,
		provider.ProvidersKey: []api.Provider{
			provider.Config,
			provider.FromLookupKey(`environment`, provider.Environment, nil)}}

	if cfg.ConfigPath != `` {
		sessionOptions[api.ProvideConfig] = cfg.ConfigPath
	}

	err := provide.TryWithParent(context.Background(), provider.Mux, sessionOptions, func(hs api.Session) error {
		e := Router(hs, &cmdOpts)
		e.Logger.SetOutput(cmd.OutOrStdout())

		server := &http.Server{
			Addr:    cfg.Addr + `:` + strconv.Itoa(cfg.Port),
			Handler: e,
		}

		tlsConfig, err := makeTLSconfig()
		if err != nil {
			return err
		}

		if tlsConfig == nil {
			return server.ListenAndServe()
		}
		server.TLSConfig = tlsConfig
		return server.ListenAndServeTLS(``, ``)
	})
	if err != nil {
		fmt.Fprintln(cmd.OutOrStderr(), err)
		os.Exit(1)
	}
}

// Router creates the echo router that serves the /lookup endpoint on behalf of
// the given session. The given options are the base for every request, copied
// and refined by the query parameters default, merge, type, client, and var
func Router(hs api.Session, base *provide.CommandOptions) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	doLookup := func(c echo.Context) (err error) {
		defer func() {
			if r := recover(); r != nil {
				switch r := r.(type) {
				case error:
					err = c.JSON(http.StatusBadRequest, map[string]string{`message`: r.Error()})
				case string:
					err = c.JSON(http.StatusBadRequest, map[string]string{`message`: r})
				default:
					panic(r)
				}
			}
		}()

		opts := *base
		name := c.Param(`name`)
		params := c.QueryParams()
		if dflt, ok := params[`default`]; ok && len(dflt) > 0 {
			opts.Default = &dflt[0]
		}
		opts.Merge = params.Get(`merge`)
		opts.Type = params.Get(`type`)
		opts.Client = params.Get(`client`)
		opts.Variables = append(opts.Variables, params[`var`]...)
		opts.RenderAs = `json`
		out := bytes.Buffer{}
		if provide.LookupAndRender(hs, &opts, []string{name}, &out) {
			return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, out.Bytes())
		}
		return c.NoContent(http.StatusNotFound)
	}

	e.GET(`/lookup/:name`, doLookup)
	return e
}

func loadCertPool(pemFile string) (*x509.CertPool, error) {
	data, err := os.ReadFile(pemFile)
	if err != nil {
		return nil, err
	}

	certPool := x509.NewCertPool()
	if !certPool.AppendCertsFromPEM(data) {
		return nil, fmt.Errorf(`failed to load certificate %q`, pemFile)
	}

	return certPool, nil
}

func makeTLSconfig() (*tls.Config, error) {
	if cfg.SSLCert == `` || cfg.SSLKey == `` {
		return nil, nil
	}
	tlsConfig := new(tls.Config)

	cert, err := tls.LoadX509KeyPair(cfg.SSLCert, cfg.SSLKey)
	if err != nil {
		return tlsConfig, err
	}

	tlsConfig.Certificates = []tls.Certificate{cert}

	if cfg.ClientCertVerify {
		tlsConfig.ClientAuth = tls.RequireAndVerifyClientCert
	}

	if cfg.ClientCA != `` {
		certPool, err := loadCertPool(cfg.ClientCA)
		if err != nil {
			return tlsConfig, err
		}

		tlsConfig.ClientCAs = certPool
	}

	return tlsConfig, nil
}
