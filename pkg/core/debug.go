package core

import "sync/atomic"

var debugMode atomic.Bool

func init() {
	debugMode.Store(true)
}

// SetDebugMode enables or disables debug mode. In debug mode build errors
// carry a stack trace. It is safe to call from any goroutine; config
// reloads call it off the UI thread.
func SetDebugMode(debug bool) {
	debugMode.Store(debug)
}

// IsDebugMode reports whether debug mode is on. It is on by default.
func IsDebugMode() bool {
	return debugMode.Load()
}
