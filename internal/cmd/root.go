// Package cmd implements the perm command line.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/buckeye43210/pyPERM/internal/config"
	"github.com/buckeye43210/pyPERM/internal/engine"
	"github.com/buckeye43210/pyPERM/internal/engine/taxonomy"
	"github.com/buckeye43210/pyPERM/internal/logging"
	"github.com/buckeye43210/pyPERM/internal/output"
	"github.com/buckeye43210/pyPERM/internal/pipeline"
	"github.com/buckeye43210/pyPERM/internal/source"
)

// Execute runs the root command.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd builds the perm command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	v := config.New()
	d := config.Default()

	root := &cobra.Command{
		Use:   "perm <attr_file> <cat_file> <pri_file>",
		Short: "Build attribute-driven decision trees",
		Long: `perm reads an attribute file (items and their attribute values), a
category file (which values belong to which category) and a priority file
(ordered category groups), and prints one decision tree per priority group.`,
		Args: cobra.ExactArgs(3),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindFlags(cmd, v)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v, args)
		},
	}

	addBuildFlags(root.Flags(), d)
	root.PersistentFlags().String("log-level", d.Log.Level, "log level: debug, info, warn or error")
	root.PersistentFlags().String("log-format", d.Log.Format, "log format: text or json")
	root.PersistentFlags().StringP("config", "c", "", "config file (default is ./perm.yaml or $HOME/.config/perm/perm.yaml)")

	root.AddCommand(newVersionCmd())
	return root
}

func addBuildFlags(f *pflag.FlagSet, d config.Config) {
	f.Bool("gemtext", false, "render gemtext (same as --format gemtext)")
	f.StringP("format", "f", d.Output.Format, "output format: text, gemtext, styled, json or yaml")
	f.String("order", d.Order, "sibling order: document or lexical")
	f.StringArrayP("output", "o", nil, "write the tree to this file, format taken from the extension (repeatable)")
	f.Bool("stdout", false, "also print to stdout when --output is given")
	f.String("gemtext-base", d.Output.GemtextBase, "link prefix for gemtext leaves")
}

// bindFlags layers flags over the config file and PERM_* environment.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	bindings := map[string]string{
		"order":               "order",
		"output.format":       "format",
		"output.stdout":       "stdout",
		"output.gemtext_base": "gemtext-base",
		"log.level":           "log-level",
		"log.format":          "log-format",
	}
	for key, name := range bindings {
		if fl := cmd.Flags().Lookup(name); fl != nil {
			if err := v.BindPFlag(key, fl); err != nil {
				return err
			}
		}
	}

	path, _ := cmd.Flags().GetString("config")
	if err := config.ReadFile(v, path); err != nil {
		return err
	}

	// Set after the file is read: explicit flags win.
	if fl := cmd.Flags().Lookup("output"); fl != nil && fl.Changed {
		paths, _ := cmd.Flags().GetStringArray("output")
		v.Set("output.paths", paths)
	}
	if gem, _ := cmd.Flags().GetBool("gemtext"); gem {
		v.Set("output.format", string(output.FormatGemtext))
	}
	return nil
}

func run(cmd *cobra.Command, v *viper.Viper, args []string) error {
	cmd.SilenceUsage = true

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	logger := logging.Init(cmd.ErrOrStderr(), cfg.Log.Format, logging.ParseLevel(cfg.Log.Level))

	order, _ := taxonomy.ParseOrder(cfg.Order)
	eng := engine.New(engine.WithOrder(order), engine.WithLogger(logger))

	out, err := newOutput(cfg.Output, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	p := pipeline.New(source.Files{
		Attributes: args[0],
		Categories: args[1],
		Priorities: args[2],
	}, eng, out)
	defer p.Close()

	rep, err := p.Run(cmd.Context())
	if err != nil {
		return err
	}
	logger.Info("decision tree written",
		"items", rep.Items,
		"groups", rep.Groups,
		"branches", rep.Branches,
		"leaves", rep.Leaves,
		"unresolved", len(rep.Unresolved),
	)
	return nil
}

// Version is set at build time with -ldflags "-X ...cmd.Version=v1.2.3".
var Version = "dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the perm version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "perm %s\n", Version)
		},
	}
}
