package retention

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsExpired(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name        string
		age         time.Duration
		maxAgeHours float64
		want        bool
	}{
		{"fresh file within window", 1 * time.Hour, 24, false},
		{"exactly at the boundary", 24 * time.Hour, 24, false},
		{"just past the boundary", 24*time.Hour + time.Second, 24, true},
		{"well past the boundary", 48 * time.Hour, 24, true},
		{"fractional window", 45 * time.Minute, 0.5, true},
		{"future mtime is not expired", -1 * time.Hour, 24, false},
		{"huge window keeps a fresh file", time.Minute, 3_000_000, false},
		{"huge window keeps an old file", 20_000 * time.Hour, 3_000_000, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			asset := Asset{Name: "gemini-image-1.png", ModTime: now.Add(-tc.age)}
			assert.Equal(t, tc.want, IsExpired(asset, tc.maxAgeHours, now))
		})
	}
}

// maxAgeHours == 0 is the force-delete overload: every asset is expired, even
// a brand new one. Callers rely on this exact behavior for delete-all.
func TestIsExpiredZeroHoursMeansForceDelete(t *testing.T) {
	now := time.Now()

	assert.True(t, IsExpired(Asset{ModTime: now}, 0, now))
	assert.True(t, IsExpired(Asset{ModTime: now.Add(-time.Minute)}, 0, now))
	assert.True(t, IsExpired(Asset{ModTime: now.Add(time.Hour)}, 0, now))
}

func TestAssetAgeClampsClockSkew(t *testing.T) {
	now := time.Now()
	future := Asset{ModTime: now.Add(10 * time.Minute)}
	assert.Equal(t, time.Duration(0), future.Age(now))

	past := Asset{ModTime: now.Add(-90 * time.Minute)}
	assert.Equal(t, 90*time.Minute, past.Age(now))
}
