package exitcodes

// Exit codes for upload-cleanup
// These codes form the contract with the upload pipeline invoking the hook
const (
	Success       = 0 // Every path was handled
	InvalidConfig = 2 // Configuration file invalid or missing
	UsageError    = 3 // Bad command-line arguments
	RuntimeError  = 4 // At least one removal failed
)
