package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/purduesigbots/purdueros-cli/internal/config"
	"github.com/purduesigbots/purdueros-cli/internal/kernel"
	"github.com/purduesigbots/purdueros-cli/internal/logging"
	"github.com/purduesigbots/purdueros-cli/internal/messages"
	"github.com/purduesigbots/purdueros-cli/internal/terminal"
)

var (
	homeDir    = homedir.Dir
	lookupEnv  = os.LookupEnv
	appFs      = afero.NewOsFs()
	isTerminal = terminal.IsTerminal
)

// globalOptions holds persistent flags shared by every subcommand.
type globalOptions struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	global := &globalOptions{}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().Bool("version", false, messages.RootVersionFlag)
	cmd.PersistentFlags().BoolVarP(&global.verbose, "verbose", "v", false, messages.RootVerboseFlag)

	cmd.AddCommand(
		newUpgradeCmd(global),
		newKernelsCmd(global),
	)
	return cmd
}

// environment is the resolved user configuration for one command run.
type environment struct {
	paths  config.Paths
	cfg    *config.Config
	logger *slog.Logger
}

// loadEnvironment resolves the data directory and loads config.toml.
// Diagnostics go to the command's stderr.
func loadEnvironment(cmd *cobra.Command, global *globalOptions) (*environment, error) {
	logger := logging.New(cmd.ErrOrStderr(), global.verbose)
	home, err := homeDir()
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigResolveHomeFmt, err)
	}
	paths, err := config.ResolvePaths(home, lookupEnv)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(appFs, paths.ConfigPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded config", "path", paths.ConfigPath, "kernels", cfg.KernelsDir(paths))
	return &environment{paths: paths, cfg: cfg, logger: logger}, nil
}

// store opens the configured kernel store. out receives the upgrade summary.
func (e *environment) store(out io.Writer, diffLines int) (*kernel.Store, error) {
	return kernel.NewStore(appFs, e.cfg.KernelsDir(e.paths), kernel.Options{
		Out:          out,
		DiffMaxLines: diffLines,
	})
}
