package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Antonboom/ib-instruments-config/internal/config"
	"github.com/Antonboom/ib-instruments-config/internal/ibconfig"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type app struct {
	configPath   string
	ibConfigPath string
	printMetrics bool

	logger zerolog.Logger
	ibCfg  *ibconfig.Config
}

func newRootCmd() *cobra.Command {
	a := new(app)

	root := &cobra.Command{
		Use:          "ib-instruments",
		Short:        "Resolve futures instruments against the IB configuration",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.ErrOrStderr())
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			if a.printMetrics {
				printMetrics(cmd.ErrOrStderr())
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Path to config file")
	flags.StringVar(&a.ibConfigPath, "ib-config", "", "Path to IB futures configuration (CSV), overrides config file")
	flags.BoolVar(&a.printMetrics, "print-metrics", false, "Print resolver metrics to stderr on exit")

	root.AddCommand(
		newResolveCmd(a),
		newReverseCmd(a),
		newListCmd(a),
		newDumpCmd(a),
	)
	return root
}

func (a *app) init(stderr io.Writer) error {
	cfg := config.Default()
	if a.configPath != "" {
		var err error
		if cfg, err = config.ParseAndValidate(a.configPath); err != nil {
			return err
		}
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(cfg.Log.Level))
	if err != nil {
		return fmt.Errorf("parse log level: %v", err)
	}
	zerolog.SetGlobalLevel(lvl)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: stderr})
	a.logger = log.Logger

	src := ibconfig.DefaultSource()
	path := cfg.IB.ConfigPath
	if a.ibConfigPath != "" {
		path = a.ibConfigPath
	}
	if path != "" {
		src = ibconfig.FileSource(path)
	}

	a.ibCfg = ibconfig.Load(src, a.logger)
	return nil
}
