package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/simevents/internal/config"
	"github.com/dshills/simevents/internal/sim"
)

type runFlags struct {
	until   float64
	metrics bool
}

func newRunCmd(root *rootFlags) *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the configured simulation",
		Long: `Builds the registry from the configuration, creates the event instances
described by the sources and runs the scheduler until no events remain or the
configured end time is reached.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := root.loadOptions(cmd)
			if cmd.Flags().Changed("until") {
				opts = append(opts, config.WithOverride("run.until", flags.until))
			}
			return runSimulation(cmd, root.configPath, opts, flags.metrics)
		},
	}

	cmd.Flags().Float64Var(&flags.until, "until", 0, "stop the run at this time (0 runs until no events remain)")
	cmd.Flags().BoolVar(&flags.metrics, "metrics", false, "print the collected metrics after the run")
	return cmd
}

func runSimulation(cmd *cobra.Command, path string, opts []config.LoadOption, dumpMetrics bool) error {
	a, err := newApp(path, opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer a.Close()

	env := sim.NewEnvironment(sim.WithStepHook(func(*sim.Event) {
		a.metrics.RecordEvent()
	}))

	n, err := config.Schedule(a.root, a.cfg, env)
	if err != nil {
		return err
	}
	a.logger.Info("instances scheduled", "count", n, "pending", env.Pending())

	runErr := env.Run(a.cfg.Run.Until)

	stats := a.dispatcher.Stats()
	a.logger.Info("run finished",
		"now", env.Now(),
		"processed", env.Processed(),
		"dispatches", stats.Dispatched,
		"handlers", stats.Handled,
		"failed", stats.Failed,
		"panicked", stats.Panicked,
		"avg_handler", stats.AvgDuration,
	)

	if dumpMetrics {
		if err := a.metrics.WriteText(cmd.OutOrStdout()); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
	}
	return runErr
}
