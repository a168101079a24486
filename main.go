package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"slava0135/symcore/config"
)

var (
	rootCmd = &cobra.Command{
		Use:   "symcore",
		Short: "Symbolic value algebra and satisfiability oracle",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return before(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	configPath string
	cfg        = config.Default()
)

func init() {
	fl := rootCmd.PersistentFlags()
	fl.StringVar(&configPath, "config", "symcore.yaml", "path to the configuration file")
	fl.String("log-level", cfg.LogLevel, "logging level")
	fl.StringP("output", "o", cfg.Output, "value output format (text, yaml)")
	fl.Uint("timeout", cfg.Oracle.Timeout, "oracle timeout in milliseconds, 0 for none")

	rootCmd.AddCommand(demoCmd, solveCmd, encodeCmd)
}

func before(cmd *cobra.Command) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd.Flags(), loaded)
	if err := loaded.Validate(); err != nil {
		return errors.Wrapf(err, "config '%s'", configPath)
	}
	level, err := logrus.ParseLevel(loaded.LogLevel)
	if err != nil {
		return errors.Wrapf(err, "parsing log level '%s'", loaded.LogLevel)
	}
	logrus.SetLevel(level)
	cfg = loaded
	return nil
}

// applyFlags overrides file values with flags set on the command line.
func applyFlags(fl *pflag.FlagSet, c *config.Config) {
	if fl.Changed("log-level") {
		c.LogLevel, _ = fl.GetString("log-level")
	}
	if fl.Changed("output") {
		c.Output, _ = fl.GetString("output")
	}
	if fl.Changed("timeout") {
		c.Oracle.Timeout, _ = fl.GetUint("timeout")
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
