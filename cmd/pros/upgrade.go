package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/purduesigbots/purdueros-cli/internal/kernel"
	"github.com/purduesigbots/purdueros-cli/internal/logging"
	"github.com/purduesigbots/purdueros-cli/internal/messages"
	"github.com/purduesigbots/purdueros-cli/internal/upgrade"
)

var (
	diffColorAdded   = color.New(color.FgGreen)
	diffColorRemoved = color.New(color.FgRed)
	diffColorHunk    = color.New(color.FgCyan)
)

func newUpgradeCmd(global *globalOptions) *cobra.Command {
	var (
		kernelID     string
		environments []string
		dryRun       bool
		diffLines    int
	)

	cmd := &cobra.Command{
		Use:   messages.UpgradeUse,
		Short: messages.UpgradeShort,
		Long:  messages.UpgradeLong,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment(cmd, global)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("diff-lines") {
				diffLines = env.cfg.Upgrade.DiffLines
			}
			store, err := env.store(cmd.OutOrStdout(), diffLines)
			if err != nil {
				return err
			}
			in := cmd.InOrStdin()
			orchestrator, err := upgrade.New(upgrade.Options{
				Actions: store,
				Prompter: upgrade.LinePrompter{
					In:         in,
					Out:        cmd.OutOrStdout(),
					ShowPrompt: func() bool { return isTerminal(in) },
				},
				Fs:                  appFs,
				Home:                env.paths.Home,
				Logger:              env.logger,
				DefaultEnvironments: env.cfg.DefaultEnvironments(),
			})
			if err != nil {
				return err
			}

			directory := ""
			if len(args) > 0 {
				directory = args[0]
			}
			result, err := orchestrator.Run(upgrade.Args{
				Directory:    directory,
				Kernel:       kernelID,
				Environments: environments,
				DryRun:       dryRun,
			})
			if err != nil {
				return reportUpgradeError(env.logger, err)
			}
			if result.Plan != nil {
				return renderUpgradePlan(cmd.OutOrStdout(), *result.Plan)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&kernelID, "kernel", "k", kernel.LatestIdentifier, messages.UpgradeFlagKernel)
	cmd.Flags().StringSliceVarP(&environments, "environments", "e", nil, messages.UpgradeFlagEnvironments)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, messages.UpgradeFlagDryRun)
	cmd.Flags().IntVar(&diffLines, "diff-lines", kernel.DefaultDiffMaxLines, messages.UpgradeFlagDiffLines)
	return cmd
}

// reportUpgradeError is the single boundary for upgrade failures. Input
// errors are returned for runMain to print. I/O failures are logged with
// their full cause chain and end the command with exit code 1.
func reportUpgradeError(logger *slog.Logger, err error) error {
	var upgradeErr *upgrade.Error
	if !errors.As(err, &upgradeErr) || upgradeErr.Kind.IsInput() {
		return err
	}
	attrs := []any{slog.String(messages.UpgradeTraceOpKey, upgradeErr.Op)}
	if upgradeErr.Kernel != "" {
		attrs = append(attrs, slog.String(messages.UpgradeTraceKernelKey, upgradeErr.Kernel))
	}
	if upgradeErr.Path != "" {
		attrs = append(attrs, slog.String(messages.UpgradeTracePathKey, upgradeErr.Path))
	}
	if len(upgradeErr.Requested) > 0 {
		attrs = append(attrs, slog.Any(messages.UpgradeTraceEnvironmentsKey, upgradeErr.Requested))
	}
	logger.Error(messages.UpgradeTraceHeader, attrs...)
	for _, cause := range logging.ErrorChain(upgradeErr.Err) {
		logger.Error(messages.UpgradeTraceHeader, slog.String(messages.UpgradeTraceCauseKey, cause))
	}
	return &SilentExitError{Code: 1}
}

func renderUpgradePlan(out io.Writer, plan kernel.Plan) error {
	if _, err := fmt.Fprintf(out, messages.UpgradeDryRunHeaderFmt, plan.Project, plan.Kernel); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, messages.UpgradeDryRunSectionFmt, messages.UpgradeDryRunEnvironment); err != nil {
		return err
	}
	envs := append([]string{messages.KernelPlanCommonEnvironment}, plan.Environments...)
	for _, env := range envs {
		if _, err := fmt.Fprintf(out, messages.UpgradeDryRunItemFmt, env); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(out, messages.UpgradeDryRunSectionFmt, messages.UpgradeDryRunFiles); err != nil {
		return err
	}
	if plan.Pending() == 0 {
		_, err := fmt.Fprintln(out, messages.UpgradeDryRunNoChanges)
		return err
	}
	for _, change := range plan.Changes {
		if change.Action == kernel.ActionUnchanged {
			continue
		}
		if _, err := fmt.Fprintf(out, messages.UpgradeDryRunChangeFmt, change.Path, change.Action); err != nil {
			return err
		}
		if err := writeColorizedDiff(out, change.UnifiedDiff); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(out, messages.UpgradeDryRunSummaryFmt, plan.Pending(), len(plan.Changes))
	return err
}

// writeColorizedDiff indents diff under its file entry and colors changed lines.
func writeColorizedDiff(out io.Writer, diff string) error {
	if diff == "" {
		return nil
	}
	for _, line := range strings.Split(strings.TrimRight(diff, "\n"), "\n") {
		rendered := line
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		case strings.HasPrefix(line, "@@"):
			rendered = diffColorHunk.Sprint(line)
		case strings.HasPrefix(line, "+"):
			rendered = diffColorAdded.Sprint(line)
		case strings.HasPrefix(line, "-"):
			rendered = diffColorRemoved.Sprint(line)
		}
		if _, err := fmt.Fprintf(out, "      %s\n", rendered); err != nil {
			return err
		}
	}
	return nil
}
