package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/typedconfig/pkg/typedconfig"
	"github.com/randalmurphal/typedconfig/pkg/typedconfig/observability"
)

type getOptions struct {
	kind       string
	optional   bool
	def        string
	snapshotID string
}

func newGetCmd(global *globalOptions) *cobra.Command {
	opts := &getOptions{}

	cmd := &cobra.Command{
		Use:   "get KEY",
		Short: "Print the value at KEY if it matches the requested kind",
		Long: `Print the value at KEY if its stored type matches --kind.

Kinds: array, bool, int, float, float-inclusive, string.

Absent and null keys print the --default value when given. Otherwise a
mandatory lookup fails and an optional lookup prints "null". A value of the
wrong type always fails, even with a default.

Examples:
  typedconfig get server.port --kind int -c app.yaml
  typedconfig get server.tls --kind bool --optional
  typedconfig get retries --kind int --default 3
  typedconfig get server.port --kind int --snapshot 2f1c...`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(cmd, global, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.kind, "kind", "k", "string", "Requested kind")
	cmd.Flags().BoolVar(&opts.optional, "optional", false, "Print null instead of failing when the key is absent")
	cmd.Flags().StringVarP(&opts.def, "default", "d", "", "Default for absent or null keys, as a YAML literal")
	cmd.Flags().StringVar(&opts.snapshotID, "snapshot", "", "Read from a stored snapshot instead of live configuration")

	return cmd
}

func runGet(cmd *cobra.Command, global *globalOptions, opts *getOptions, key string) error {
	if err := validate.Struct(getRequest{Key: key, Kind: opts.kind}); err != nil {
		return formatValidationError(err)
	}
	kind, err := typedconfig.ParseKind(opts.kind)
	if err != nil {
		return err
	}

	var def []any
	if cmd.Flags().Changed("default") {
		var v any
		if err := yaml.Unmarshal([]byte(opts.def), &v); err != nil {
			return fmt.Errorf("parse --default: %w", err)
		}
		def = append(def, v)
	}

	logger := global.logger(cmd)
	store, err := openStore(cmd, global, logger, opts.snapshotID)
	if err != nil {
		return err
	}

	acc := typedconfig.New(store,
		typedconfig.WithLogger(logger),
		typedconfig.WithMetrics(observability.NewMetricsRecorder()),
		typedconfig.WithSpanManager(observability.NewSpanManager()),
	).WithContext(cmd.Context())

	value, err := acc.Lookup(kind, key, !opts.optional, def...)
	if err != nil {
		return err
	}
	return printValue(cmd.OutOrStdout(), value)
}

// openStore returns live configuration, or a stored snapshot when id is set.
func openStore(cmd *cobra.Command, global *globalOptions, logger *slog.Logger, id string) (typedconfig.Store, error) {
	if id == "" {
		return global.openSource(logger)
	}
	if err := validate.Struct(snapshotRequest{ID: id}); err != nil {
		return nil, formatValidationError(err)
	}

	manager, closeStore, err := global.openSnapshots(logger)
	if err != nil {
		return nil, err
	}
	defer closeStore()

	snap, err := manager.Load(cmd.Context(), id)
	if err != nil {
		return nil, fmt.Errorf("load snapshot %s: %w", id, err)
	}
	return snap, nil
}

// printValue writes value as YAML so its type stays visible ("8080" vs 8080).
func printValue(w io.Writer, value any) error {
	out, err := yaml.Marshal(value)
	if err != nil {
		return fmt.Errorf("render value: %w", err)
	}
	_, err = w.Write(out)
	return err
}
