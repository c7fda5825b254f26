package log

// Version information for the log package.
const (
	Version = "1.1.0"

	// MinCompatibleVersion is the oldest version whose Logger implementations
	// still satisfy this interface. 1.1.0 added With.
	MinCompatibleVersion = "1.1.0"
)
