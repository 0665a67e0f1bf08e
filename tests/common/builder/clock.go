//go:build unit || e2e

package builder

import "time"

// FixedNow is the reference instant every builder stamps onto its records.
var FixedNow = time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)
