package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/havrydotdev/myclass/internal/buildinfo"
	"github.com/havrydotdev/myclass/internal/config"
	"github.com/havrydotdev/myclass/internal/logger"
)

// app carries what the persistent pre-run resolved for subcommands.
type app struct {
	cfgPath string
	debug   bool
	noColor bool

	cfg     config.Config
	cleanup func() error
}

func Execute() {
	a := &app{}
	cmd := newRootCmd(a)
	err := cmd.Execute()
	_ = a.close()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "myclass",
		Short:        "Drive the myclass sample operations from scripts or a REPL",
		Version:      buildinfo.Version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return a.close()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.repl(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.SetVersionTemplate(buildinfo.String() + "\n")

	cmd.PersistentFlags().StringVar(&a.cfgPath, "config", "", "config file (default ./"+config.DefaultPath+" when present)")
	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging to <log_dir>/myclass.log")
	cmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable terminal styling")

	cmd.AddCommand(
		runCmd(a),
		evalCmd(a),
		parseCmd(),
		calcSumCmd(),
		frobulateCmd(),
		walkListCmd(),
	)

	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("debug") {
		cfg.Debug = a.debug
	}
	if a.noColor {
		cfg.Color = false
	}
	a.cfg = cfg

	cleanup, err := logger.Setup(logger.Config{Dir: cfg.LogDir, Debug: cfg.Debug})
	if err != nil {
		return err
	}
	a.cleanup = cleanup

	logger.L().Debug("cli.start", "command", cmd.CommandPath(), "config", a.cfgPath)
	return nil
}

func (a *app) close() error {
	if a.cleanup == nil {
		return nil
	}

	err := a.cleanup()
	a.cleanup = nil
	return err
}
