package shared

// Global flag values - set by root command
var (
	jsonFlag  bool
	checkFlag bool

	// Build-time version information
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// RegisterFlagPointers returns pointers to flag variables for binding.
// Called by root command to register persistent flags.
func RegisterFlagPointers() (jsonPtr, checkPtr *bool) {
	return &jsonFlag, &checkFlag
}

// SetVersion sets the version information (called from main).
func SetVersion(v, c, b string) {
	version = v
	commit = c
	buildDate = b
}

// GetVersion returns the build version information.
func GetVersion() (string, string, string) {
	return version, commit, buildDate
}

// GetJSON returns the json flag value.
func GetJSON() bool {
	return jsonFlag
}

// GetCheck returns the check (dry-run) flag value.
func GetCheck() bool {
	return checkFlag
}
