package messages

// Upgrade orchestration messages.
const (
	// UpgradeNoKernelMatchFmt reports an identifier that matched no local kernel.
	UpgradeNoKernelMatchFmt      = "no kernels were matched by %q; if the kernel exists on the update site, try 'pros fetch %s' to pull it from the update site"
	UpgradeInvalidSelectionFmt   = "kernel %q was not a valid option (expected one of %s)"
	UpgradeInvalidTargetFmt      = "project %s is a file; cannot upgrade a file"
	UpgradeEnvironmentMismatch   = "environments list does not match"
	UpgradeAvailableValuesFmt    = "available values: %s"
	UpgradeReceivedValuesFmt     = "received values: %s"
	UpgradeIOFailedFmt           = "%s: %v"
	UpgradeActionsRequired       = "upgrade actions are required"
	UpgradePrompterRequired      = "upgrade prompter is required"
	UpgradeUnknownErrorKind      = "upgrade failed"
	UpgradeReadPromptFmt         = "read kernel choice: %w"
	UpgradeWritePromptFmt        = "write kernel prompt: %w"
	UpgradeResolveAbsolutePathOp = "resolve project path"
	UpgradeResolveCandidatesOp   = "resolve kernel candidates"
	UpgradeChooseKernelOp        = "choose kernel"
	UpgradeFindKernelDirOp       = "find kernel directory"
	UpgradeListEnvironmentsOp    = "list kernel environments"
	UpgradeReadProjectOp         = "read project file"
	UpgradeStatProjectOp         = "check project location"
	UpgradePlanOp                = "plan upgrade"
	UpgradeProjectOp             = "upgrade project"

	// UpgradeTraceHeader introduces the boundary diagnostic trace for I/O failures.
	UpgradeTraceHeader = "upgrade failed"
)
