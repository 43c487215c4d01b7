// Package lifecycle holds shared limits for application start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds database pings on start and graceful shutdown on stop.
const DefaultTimeout = 10 * time.Second
