// Package debug provides conditional debug logging for pipeline runs.
package debug

import (
	"fmt"
	"log"
	"time"
)

// DebugOutput prints a timestamped debug line if debugging is enabled.
func DebugOutput(enabled bool, format string, args ...interface{}) {
	if !enabled {
		return
	}
	log.Printf("[%s] %s", time.Now().Format("15:04:05.000"), fmt.Sprintf(format, args...))
}

// DebugTiming logs the start of an operation and returns a func that logs
// its duration when called. No-op when debugging is disabled.
func DebugTiming(enabled bool, operation string) func() {
	if !enabled {
		return func() {}
	}

	start := time.Now()
	DebugOutput(enabled, "starting: %s", operation)

	return func() {
		DebugOutput(enabled, "completed: %s (took %v)", operation, time.Since(start))
	}
}
