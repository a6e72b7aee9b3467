// Package lifecycle holds shared start/stop timing constants for managed components.
package lifecycle

import "time"

// DefaultTimeout bounds startup probes and graceful shutdown of managed components.
const DefaultTimeout = 10 * time.Second
