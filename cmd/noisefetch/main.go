package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/noisefetch/internal/app"
	"github.com/bft-labs/noisefetch/internal/cliconfig"
	"github.com/bft-labs/noisefetch/pkg/log"
	"github.com/bft-labs/noisefetch/pkg/noisefetch"
)

const helpDescription = `
Save a webpage to disk. By default the everynoise.com genre map for
"brooklyn indie" is written to ./webpage.html, replacing any previous copy.

Highlights:
  - The output file is replaced atomically; a failed request leaves it untouched.
  - Configure via file, env (NOISEFETCH_*), or flags.
  - --watch re-fetches whenever the config file changes.
`

var exampleUsage = strings.TrimSpace(`
  noisefetch
  noisefetch --genre "dream pop" --output dreampop.html
  noisefetch --url https://example.com --output example.html --timeout 10s
  noisefetch --config $HOME/.noisefetch/config.toml --watch
  noisefetch artists "brooklyn indie"
  noisefetch similar "dream pop" shoegaze
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger := cliconfig.Logger("error")
		logger.Error().Err(err).Msg("noisefetch")
		os.Exit(1)
	}
}

// flagSet holds the values bound to command-line flags.
type flagSet struct {
	cfg     cliconfig.Config
	cfgPath string
	envFile string
}

// load resolves the effective configuration for cmd: .env first, then
// defaults, config file, environment and flags. defaultLevel replaces the
// default log level unless --log-level was given.
func (f *flagSet) load(cmd *cobra.Command, defaultLevel string) (cliconfig.Config, string, map[string]bool, error) {
	if err := cliconfig.LoadDotEnv(f.envFile); err != nil {
		return f.cfg, "", nil, fmt.Errorf("load %s: %w", f.envFile, err)
	}

	cfgFile := f.cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	// Build set of changed flags
	changed := map[string]bool{}
	cmd.Flags().Visit(func(fl *pflag.Flag) { changed[fl.Name] = true })

	base := f.cfg
	if defaultLevel != "" && !changed["log-level"] {
		base.LogLevel = defaultLevel
	}
	resolved, err := cliconfig.Load(base, cfgFile, changed)
	return resolved, cfgFile, changed, err
}

func newRootCmd() *cobra.Command {
	return buildRootCmd(&flagSet{cfg: cliconfig.DefaultConfig()})
}

func buildRootCmd(flags *flagSet) *cobra.Command {
	cfg := &flags.cfg

	root := &cobra.Command{
		Use:           "noisefetch",
		Short:         "Save a webpage (by default an everynoise genre map) to a local file",
		Long:          strings.TrimSpace(helpDescription),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, cfgFile, changed, err := flags.load(cmd, "")
			if err != nil {
				return err
			}

			zl := cliconfig.Logger(resolved.LogLevel)
			zl.Info().Interface("config", resolved).Msg("configuration")

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if !resolved.Watch {
				return saveOnce(ctx, resolved, log.NewZerologLogger(zl))
			}

			if !cliconfig.FileExists(cfgFile) {
				return fmt.Errorf("--watch needs a config file, %q does not exist", cfgFile)
			}
			logger := log.NewZerologLogger(zl)
			watcher := app.NewConfigWatcher(cfgFile, func(ctx context.Context) error {
				// Reload so edits to the file take effect.
				next, err := cliconfig.Load(flags.cfg, cfgFile, changed)
				if err != nil {
					return err
				}
				return saveOnce(ctx, next, logger)
			}, logger, app.DefaultDebounce)

			if err := watcher.Run(ctx); err != nil {
				return err
			}
			zl.Info().Msg("received signal, stopping")
			return nil
		},
	}

	root.PersistentFlags().StringVar(&flags.cfgPath, "config", "", "path to config file (default: $HOME/.noisefetch/config.toml)")
	root.PersistentFlags().StringVar(&flags.envFile, "env-file", ".env", "dotenv file loaded before reading NOISEFETCH_* variables")
	root.PersistentFlags().DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "HTTP timeout (0 disables)")
	root.PersistentFlags().StringVar(&cfg.UserAgent, "user-agent", cfg.UserAgent, "User-Agent header sent with requests")
	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error); subcommands default to warn")

	root.Flags().StringVar(&cfg.URL, "url", cfg.URL, fmt.Sprintf("page to fetch (default %s)", cliconfig.DefaultURL))
	root.Flags().StringVar(&cfg.Genre, "genre", cfg.Genre, "fetch the everynoise genre map for this genre instead of --url")
	root.Flags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "file to write the page to")
	root.Flags().StringVar(&cfg.MetricsFile, "metrics-file", cfg.MetricsFile, "write Prometheus textfile metrics here after each run")
	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "re-fetch whenever the config file changes")

	root.AddCommand(newArtistsCmd(flags), newSimilarCmd(flags))
	return root
}

func saveOnce(ctx context.Context, cfg cliconfig.Config, logger log.Logger) error {
	c, err := newClient(cfg, logger)
	if err != nil {
		return err
	}
	_, err = c.Save(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func newClient(cfg cliconfig.Config, logger log.Logger) (*noisefetch.Client, error) {
	return noisefetch.New(noisefetch.Config{
		URL:         cfg.URL,
		Output:      cfg.Output,
		Timeout:     cfg.Timeout,
		UserAgent:   cfg.UserAgent,
		MetricsFile: cfg.MetricsFile,
	}, noisefetch.WithLogger(logger))
}

// subcommandConfig resolves configuration and a logger for the genre
// subcommands. Their default level is warn so stderr stays quiet next to the
// stdout listing.
func subcommandConfig(cmd *cobra.Command, flags *flagSet) (cliconfig.Config, log.Logger, error) {
	resolved, _, _, err := flags.load(cmd, zerolog.LevelWarnValue)
	if err != nil {
		return resolved, nil, err
	}
	return resolved, log.NewZerologLogger(cliconfig.Logger(resolved.LogLevel)), nil
}
