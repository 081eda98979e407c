package ai

import "sync/atomic"

// decisionLogging gates the per-roll debug log in Policy.Choose.
// A battle makes two decisions per round, so the check must stay cheap.
var decisionLogging atomic.Bool

// EnableDebugLogging turns per-decision logging on or off.
// Call it once at startup, after the log level is known.
func EnableDebugLogging(enabled bool) {
	decisionLogging.Store(enabled)
}

// IsDebugEnabled reports whether per-decision logging is on.
func IsDebugEnabled() bool {
	return decisionLogging.Load()
}
