package bitio

// DebugLog, if non-nil, receives a trace line for every state transition a
// Reader or Writer makes (entering ReadBits/WriteBits, hitting AtEnd,
// Finalize). It is nil by default; setting it has no effect on behavior,
// only on observability.
var DebugLog func(format string, args ...interface{})

func debugf(format string, args ...interface{}) {
	if DebugLog != nil {
		DebugLog(format, args...)
	}
}
