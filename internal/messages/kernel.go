package messages

// Kernel store messages.
const (
	// KernelFSRequired indicates the store needs a filesystem.
	KernelFSRequired              = "kernel store filesystem is required"
	KernelRootRequired            = "kernel store directory is required"
	KernelListFailedFmt           = "failed to list kernels in %s: %w"
	KernelInvalidNameFmt          = "invalid kernel name %q"
	KernelNotInstalledFmt         = "kernel %s is not installed in %s"
	KernelStatFailedFmt           = "failed to stat %s: %w"
	KernelListEnvironmentsFmt     = "failed to list environments in %s: %w"
	KernelEnvironmentMissingFmt   = "kernel %s has no environment %q"
	KernelWalkFailedFmt           = "failed to walk %s: %w"
	KernelReadFailedFmt           = "failed to read %s: %w"
	KernelWriteFailedFmt          = "failed to write %s: %w"
	KernelCreateDirFailedFmt      = "failed to create directory %s: %w"
	KernelProjectPathRequired     = "project path is required"
	KernelReadProjectFailedFmt    = "failed to read project file %s: %w"
	KernelInvalidProjectFileFmt   = "invalid project file %s: %w"
	KernelEncodeProjectFailedFmt  = "failed to encode project file: %w"
	KernelUpgradedFmt             = "Upgraded %s to kernel %s (%d files written, %d unchanged)\n"
	KernelDiffBinary              = "(binary file; diff not shown)\n"
	KernelDiffTruncatedFmt        = "... (truncated to %d lines; rerun with %s <n> to see more)"
	KernelDiffCurrentSuffix       = " (current)"
	KernelDiffTargetSuffixFmt     = " (kernel %s)"
	KernelPlanProjectEnvironment  = "project"
	KernelPlanCommonEnvironment   = "common"
	KernelPlanActionAdd           = "add"
	KernelPlanActionUpdate        = "update"
	KernelPlanActionUnchanged     = "unchanged"
	KernelPlanDiffLinesFlag       = "--diff-lines"
	KernelSourceNotDirFmt         = "kernel source %s is not a directory"
	KernelInvalidEnvironmentFmt   = "invalid environment name %q"
	KernelIdentifierSeparatorHint = "kernel identifiers must not contain path separators"
)
