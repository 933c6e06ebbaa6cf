// Package lifecycle holds shared settings for starting and stopping components.
package lifecycle

import "time"

// DefaultTimeout bounds start hooks (database ping, migrations) and graceful shutdown.
const DefaultTimeout = 10 * time.Second
