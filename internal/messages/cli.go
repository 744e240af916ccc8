package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "pros"
	// RootShort is the short description for the root command.
	RootShort       = "PROS command line interface"
	RootVersionFlag = "Print version and exit"
	RootVerboseFlag = "Print diagnostic output"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// UpgradeUse is the upgrade command usage.
	UpgradeUse   = "upgrade [directory]"
	UpgradeShort = "Upgrade a project to a locally installed kernel"
	UpgradeLong  = `Upgrade the kernel embedded in a project.

The kernel identifier may be partial: "2.1" matches every local kernel whose
name starts with 2.1. When more than one kernel matches you are asked to pick
one. "latest" selects the newest local kernel.

The directory defaults to the current directory and may start with ~/.`

	UpgradeFlagKernel       = "Kernel to upgrade to (name, prefix, or \"latest\")"
	UpgradeFlagEnvironments = "Environments to upgrade (defaults to the project's recorded environments)"
	UpgradeFlagDryRun       = "Show the files that would change without writing them"
	UpgradeFlagDiffLines    = "Maximum diff lines shown per file with --dry-run"

	UpgradeDryRunHeaderFmt   = "Upgrade plan (dry-run) for %s -> kernel %s: no files were written.\n"
	UpgradeDryRunNoChanges   = "  - (no changes)"
	UpgradeDryRunChangeFmt   = "  - %s [%s]\n"
	UpgradeDryRunSectionFmt  = "\n%s:\n"
	UpgradeDryRunEnvironment = "Environments"
	UpgradeDryRunFiles       = "Files"
	UpgradeDryRunSummaryFmt  = "\n%d of %d files would change.\n"
	UpgradeDryRunItemFmt     = "  - %s\n"

	// UpgradeTraceOpKey and the keys below label the I/O failure trace.
	UpgradeTraceOpKey           = "op"
	UpgradeTraceKernelKey       = "kernel"
	UpgradeTracePathKey         = "path"
	UpgradeTraceEnvironmentsKey = "environments"
	UpgradeTraceCauseKey        = "cause"

	// KernelsUse is the kernels command usage.
	KernelsUse          = "kernels [identifier]"
	KernelsShort        = "List locally installed kernels"
	KernelsNoneFmt      = "No kernels are installed in %s.\n"
	KernelsNoMatchFmt   = "No kernels matched %q.\n"
	KernelsLineFmt      = "%s\t%s\n"
	KernelsNoEnvs       = "(no environments)"
	KernelsHeaderFmt    = "Kernels in %s:\n"
	KernelsEnvSeparator = ", "
	KernelsLatestSuffix = " (latest)"

	// PromptChooseKernelFmt asks which of several matching kernels to use.
	PromptChooseKernelFmt = "Multiple kernels matched. Which kernel? (%s) "
	PromptOptionSeparator = ", "
)
