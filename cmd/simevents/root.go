package main

import (
	"github.com/spf13/cobra"

	"github.com/dshills/simevents/internal/config"
)

// rootFlags are the persistent flags shared by every command.
type rootFlags struct {
	configPath string
	logLevel   string
	logFormat  string
	isolate    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "simevents",
		Short: "Hook handlers into the lifecycle of simulation events",
		Long: `simevents builds a namespace tree of event types and topics from a
configuration file, attaches the configured handlers and runs the simulation.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "path to a TOML or YAML configuration file")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&flags.logFormat, "log-format", "", "log format (text, json)")
	pf.BoolVar(&flags.isolate, "isolate", false, "run every handler of a dispatch and recover panics")

	cmd.AddCommand(
		newRunCmd(flags),
		newCheckCmd(flags),
		newVersionCmd(),
	)
	return cmd
}

// loadOptions turns the flags that were set into configuration overrides.
func (f *rootFlags) loadOptions(cmd *cobra.Command) []config.LoadOption {
	var opts []config.LoadOption
	changed := cmd.Flags().Changed
	if changed("log-level") {
		opts = append(opts, config.WithOverride("log.level", f.logLevel))
	}
	if changed("log-format") {
		opts = append(opts, config.WithOverride("log.format", f.logFormat))
	}
	if changed("isolate") {
		opts = append(opts, config.WithOverride("dispatch.isolate", f.isolate))
	}
	return opts
}
