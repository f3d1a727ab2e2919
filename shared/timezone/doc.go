// Package timezone keeps wall-clock timestamps and calendar dates apart.
//
// Timestamps (created_at, updated_at) use the application location loaded from
// APP_TIMEZONE at import time, falling back to UTC:
//
//	now := timezone.Now()
//	stamp := timezone.Format(now, time.RFC3339)
//
// Stay dates are calendar dates with no zone. They are parsed as midnight UTC so
// night counts are plain day differences:
//
//	checkIn, _ := timezone.ParseDate("2025-03-29")
//	checkOut, _ := timezone.ParseDate("2025-04-01")
//	timezone.DaysBetween(checkIn, checkOut) // 3
package timezone
