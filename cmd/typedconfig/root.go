package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/typedconfig/pkg/typedconfig/koanfstore"
	"github.com/randalmurphal/typedconfig/pkg/typedconfig/observability"
	"github.com/randalmurphal/typedconfig/pkg/typedconfig/snapshot"
)

// globalOptions holds flags available to all subcommands.
type globalOptions struct {
	verbose    bool
	configFile string
	envPrefix  string
	envFiles   []string
	noEnv      bool
	dbPath     string
}

// newRootCmd builds the command tree. Each call returns independent flag state.
func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "typedconfig",
		Short: "Read typed configuration values",
		Long: `typedconfig reads configuration values with strict type checking.

Values come from a YAML or JSON file, .env files, and environment variables.
A value is printed only if its stored type matches the requested kind; a
string "8080" is never reported as an int.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags available to all subcommands
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging on stderr")
	flags.StringVarP(&opts.configFile, "config", "c", "", "Configuration file (.yaml, .yml, .json)")
	flags.StringVar(&opts.envPrefix, "env-prefix", koanfstore.DefaultEnvPrefix, "Environment variable prefix")
	flags.StringArrayVar(&opts.envFiles, "env-file", nil, "Read variables from a .env file (repeatable)")
	flags.BoolVar(&opts.noEnv, "no-env", false, "Ignore environment variables")
	flags.StringVar(&opts.dbPath, "db", "typedconfig.db", "Snapshot database path")

	rootCmd.AddCommand(newGetCmd(opts))
	rootCmd.AddCommand(newKeysCmd(opts))
	rootCmd.AddCommand(newSnapshotCmd(opts))
	rootCmd.AddCommand(newVersionCmd(opts))

	return rootCmd
}

// logger returns a text logger on the command's stderr.
func (o *globalOptions) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}

// source is a store whose keys can be listed.
type source = snapshot.Source

// openSource loads the configured file, .env files, and environment through
// koanf, in that order of precedence.
func (o *globalOptions) openSource(logger *slog.Logger) (source, error) {
	if err := validate.Struct(sourceRequest{ConfigFile: o.configFile, EnvPrefix: o.envPrefix}); err != nil {
		return nil, formatValidationError(err)
	}

	prefix := o.envPrefix
	if o.noEnv {
		prefix = ""
	}
	loader := koanfstore.NewLoader(
		koanfstore.WithConfigFile(o.configFile),
		koanfstore.WithDotEnvFiles(o.envFiles...),
		koanfstore.WithEnvPrefix(prefix),
		koanfstore.WithLogger(observability.EnrichLogger(logger, o.configFile)),
	)
	return loader.Load()
}

// openSnapshots opens the snapshot database.
func (o *globalOptions) openSnapshots(logger *slog.Logger) (*snapshot.Manager, func() error, error) {
	if err := validate.Struct(dbRequest{Path: o.dbPath}); err != nil {
		return nil, nil, formatValidationError(err)
	}

	store, err := snapshot.NewSQLiteStore(o.dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open snapshot database: %w", err)
	}
	manager := snapshot.NewManager(store,
		snapshot.WithLogger(logger),
		snapshot.WithMetrics(observability.NewMetricsRecorder()),
		snapshot.WithSpanManager(observability.NewSpanManager()),
	)
	return manager, store.Close, nil
}
