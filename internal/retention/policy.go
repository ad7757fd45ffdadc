package retention

import (
	"time"
)

// IsExpired reports whether the asset has outlived the retention window:
// now − ModTime > maxAgeHours.
//
// maxAgeHours == 0 is a deliberate overload: it marks every asset as expired
// regardless of age, which is how force-delete is expressed. Callers wanting
// "delete everything now" pass 0 explicitly. Do not change this to a strict
// age comparison; the cleanup endpoints depend on it.
func IsExpired(a Asset, maxAgeHours float64, now time.Time) bool {
	if maxAgeHours == 0 {
		return true
	}
	// Compared in float hours: converting the window to a time.Duration
	// would overflow int64 for very large values and flip it negative.
	return now.Sub(a.ModTime).Hours() > maxAgeHours
}
