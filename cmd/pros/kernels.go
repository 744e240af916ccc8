package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/purduesigbots/purdueros-cli/internal/kernel"
	"github.com/purduesigbots/purdueros-cli/internal/messages"
)

func newKernelsCmd(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   messages.KernelsUse,
		Short: messages.KernelsShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment(cmd, global)
			if err != nil {
				return err
			}
			store, err := env.store(cmd.OutOrStdout(), 0)
			if err != nil {
				return err
			}
			env.logger.Debug("listing kernels", "dir", store.Root())

			var names []string
			if len(args) > 0 {
				names, err = store.ResolveKernelCandidates(args[0])
			} else {
				names, err = store.List()
			}
			if err != nil {
				return err
			}
			return listKernels(cmd.OutOrStdout(), store, args, names)
		},
	}
}

func listKernels(out io.Writer, store *kernel.Store, args []string, names []string) error {
	if len(names) == 0 {
		if len(args) > 0 {
			_, err := fmt.Fprintf(out, messages.KernelsNoMatchFmt, args[0])
			return err
		}
		_, err := fmt.Fprintf(out, messages.KernelsNoneFmt, store.Root())
		return err
	}
	kernel.SortNames(names)
	all, err := store.List()
	if err != nil {
		return err
	}
	latest, _ := kernel.Latest(all)

	if _, err := fmt.Fprintf(out, messages.KernelsHeaderFmt, store.Root()); err != nil {
		return err
	}
	for _, name := range names {
		dir, err := store.FindKernelDirectory(name)
		if err != nil {
			return err
		}
		envs, err := store.ListEnvironments(dir)
		if err != nil {
			return err
		}
		label := color.New(color.Bold).Sprint(name)
		if name == latest {
			label += color.GreenString(messages.KernelsLatestSuffix)
		}
		described := messages.KernelsNoEnvs
		if len(envs) > 0 {
			described = strings.Join(envs, messages.KernelsEnvSeparator)
		}
		if _, err := fmt.Fprintf(out, messages.KernelsLineFmt, label, described); err != nil {
			return err
		}
	}
	return nil
}
