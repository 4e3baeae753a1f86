package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/redmine/internal/cliconfig"
	"github.com/bft-labs/redmine/pkg/apierr"
	"github.com/bft-labs/redmine/pkg/beans"
	"github.com/bft-labs/redmine/pkg/log"
	"github.com/bft-labs/redmine/pkg/transport"
	"github.com/bft-labs/redmine/pkg/uri"
)

var longHelp = strings.TrimSpace(`
Manage Redmine projects and issues over the REST API.

Configuration is read from $HOME/.redmine/config.toml, then REDMINE_*
environment variables, then flags. Results are printed to stdout as JSON.
`)

var exampleUsage = strings.TrimSpace(`
  redmine --url https://redmine.example.com --api-key <key> projects list
  redmine issues list --param project_id=1 --param status_id=open
  redmine issues update 42 --done-ratio 50
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// app is the state shared by every subcommand once configuration is loaded.
type app struct {
	cfg       cliconfig.Config
	log       zerolog.Logger
	transport *transport.Transport
}

func (a *app) setup(cmd *cobra.Command, cfgPath string) error {
	cfgFile := cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(&a.cfg, fc, changed); err != nil {
			return err
		}
	} else if cfgPath != "" {
		return fmt.Errorf("config file %s not found", cfgPath)
	}

	if err := cliconfig.ApplyEnvConfig(&a.cfg, changed); err != nil {
		return err
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	a.log = cliconfig.Logger(a.cfg.Debug)
	a.log.Debug().Interface("config", a.cfg.Masked()).Msg("configuration")

	builder, err := uri.New(a.cfg.URL, a.cfg.APIKey)
	if err != nil {
		return err
	}
	opts := []transport.Option{
		transport.WithHTTPClient(&http.Client{Timeout: a.cfg.HTTPTimeout}),
		transport.WithLogger(log.NewZerologAdapterWithLogger(a.log)),
		transport.WithObjectsPerPage(a.cfg.ObjectsPerPage),
	}
	if a.cfg.Login != "" {
		opts = append(opts, transport.WithCredentials(a.cfg.Login, a.cfg.Password))
	}
	a.transport, err = transport.New(builder, beans.DefaultRegistry(), opts...)
	return err
}

func main() {
	a := &app{cfg: cliconfig.DefaultConfig(), log: cliconfig.Logger(false)}
	var cfgPath string

	root := &cobra.Command{
		Use:           "redmine",
		Short:         "Manage Redmine projects and issues",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, cfgPath)
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&cfgPath, "config", "", "path to TOML config file (default $HOME/.redmine/config.toml)")
	f.StringVar(&a.cfg.URL, "url", a.cfg.URL, "Redmine base URL")
	f.StringVar(&a.cfg.APIKey, "api-key", a.cfg.APIKey, "API access key (env REDMINE_API_KEY)")
	f.StringVar(&a.cfg.Login, "login", a.cfg.Login, "login for HTTP basic authentication")
	f.StringVar(&a.cfg.Password, "password", a.cfg.Password, "password for HTTP basic authentication")
	f.IntVar(&a.cfg.ObjectsPerPage, "per-page", a.cfg.ObjectsPerPage, "objects requested per listing page")
	f.DurationVar(&a.cfg.HTTPTimeout, "timeout", a.cfg.HTTPTimeout, "HTTP request timeout")
	f.BoolVar(&a.cfg.Debug, "debug", a.cfg.Debug, "log every request")

	root.AddCommand(projectsCommand(a), issuesCommand(a))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := root.ExecuteContext(ctx)
	stop()
	if err != nil {
		ev := a.log.Error().Err(err)
		if kind := apierr.KindOf(err); kind != apierr.KindUnknown {
			ev = ev.Str("kind", string(kind))
		}
		if status := apierr.StatusCode(err); status != 0 {
			ev = ev.Int("status", status)
		}
		if msgs := apierr.Messages(err); len(msgs) > 0 {
			ev = ev.Strs("errors", msgs)
		}
		if apierr.IsNotFound(err) {
			ev.Msg("no such object")
		} else {
			ev.Msg("redmine failed")
		}
		os.Exit(1)
	}
}
