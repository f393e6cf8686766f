package cli

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"textsteg/internal/logging"
	"textsteg/pkg/config"

	"github.com/spf13/cobra"
)

// rootOpts is shared by every sub command. It is filled by the persistent flags, and by the config file once the
// command line has been parsed
type rootOpts struct {
	configPath    string
	cpuProfile    string
	memProfileDir string
	verbose       bool

	fileConfig config.FileConfig
	logger     *logging.Logger

	teardownMu sync.Mutex
	teardowns  []func()
}

// Execute runs the command line, making sure profiles are flushed if the process is interrupted
func Execute() error {
	opts := &rootOpts{}

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		opts.Teardown()
		os.Exit(0)
	}()

	return execute(opts, newRootCommand(opts))
}

// execute runs rootCmd and always stops the profilers afterwards, cobra skips post run hooks when a command fails
func execute(opts *rootOpts, rootCmd *cobra.Command) error {
	defer opts.Teardown()
	return rootCmd.Execute()
}

func newRootCommand(opts *rootOpts) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "textsteg",
		Short:         "Hide text inside images using the least significant bit of each color channel",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", config.DefaultConfigPath, "YAML file with default settings")
	rootCmd.PersistentFlags().StringVar(&opts.cpuProfile, "cpu-profile", "", "Dump CPU profile into the supplied file")
	rootCmd.PersistentFlags().StringVar(&opts.memProfileDir, "mem-profile-dir", "", "Dump memory profiles into the supplied directory")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log timing information to stderr")

	rootCmd.AddCommand(ImageCommands(opts), ServeAppCommand(opts))
	return rootCmd
}

func (o *rootOpts) setup() error {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	o.logger = logging.BuildLoggerWithOutput(os.Stderr, level)

	fileConfig, err := config.LoadFileConfig(o.configPath)
	if err != nil {
		return err
	}
	o.fileConfig = fileConfig

	if o.cpuProfile != "" {
		cpuProfileFile, err := os.Create(o.cpuProfile)
		if err != nil {
			return fmt.Errorf("create cpu profile: %w", err)
		}
		if err = StartCPUProfiler(cpuProfileFile); err != nil {
			cpuProfileFile.Close()
			return err
		}
		o.addTeardown(func() {
			StopCPUProfiler()
			cpuProfileFile.Close()
		})
	}

	if o.memProfileDir != "" {
		StartMemoryProfiler(o.memProfileDir)
		o.addTeardown(func() {
			if err := StopMemoryProfiler(); err != nil {
				o.logger.WithError(err).Error("Error writing memory profiles")
			}
		})
	}
	return nil
}

// Teardown stops any running profiler. It is safe to call more than once, which happens when the process is
// interrupted while a command is running
func (o *rootOpts) Teardown() {
	o.teardownMu.Lock()
	teardowns := o.teardowns
	o.teardowns = nil
	o.teardownMu.Unlock()

	for _, teardown := range teardowns {
		teardown()
	}
}

func (o *rootOpts) addTeardown(teardown func()) {
	o.teardownMu.Lock()
	defer o.teardownMu.Unlock()
	o.teardowns = append(o.teardowns, teardown)
}
