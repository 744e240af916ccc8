package messages

// Config messages for configuration loading and validation.
const (
	// ConfigFSRequired indicates a filesystem is required to load config.
	ConfigFSRequired                 = "config filesystem is required"
	ConfigReadFileFmt                = "failed to read config file %s: %w"
	ConfigInvalidConfigFmt           = "invalid config %s: %w"
	ConfigUnrecognizedKeysFmt        = "%s: unrecognized config keys: %v"
	ConfigValidationGuidance         = "(fix the file or remove it to use defaults)"
	ConfigEnvironmentEmptyFmt        = "%s: upgrade.environments[%d] must not be empty"
	ConfigEnvironmentDuplicateFmt    = "%s: upgrade.environments[%d] %q duplicates upgrade.environments[%d]"
	ConfigDiffLinesNegativeFmt       = "%s: upgrade.diff_lines must be zero or positive (got %d)"
	ConfigKernelsDirWhitespaceFmt    = "%s: kernels.dir must not be blank"
	ConfigResolveHomeFmt             = "resolve home directory: %w"
	ConfigHomeOverrideNotAbsoluteFmt = "%s must be an absolute path (got %q)"
)
