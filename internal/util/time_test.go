package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeSinceAt(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		ago  time.Duration
		want string
	}{
		{"just now", 30 * time.Second, "Just now"},
		{"exactly a minute is still just now", time.Minute, "Just now"},
		{"minutes", 5 * time.Minute, "5 minutes ago"},
		{"hours", 3 * time.Hour, "3 hours ago"},
		{"days", 72 * time.Hour, "3 days ago"},
		{"months", 90 * 24 * time.Hour, "3 months ago"},
		{"years", 3 * 365 * 24 * time.Hour, "3 years ago"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, TimeSinceAt(now.Add(-tc.ago), now))
		})
	}
}

// 单位名固定复数，阈值上沿会出现 "1 hours ago" 这类读法，
// 与移动端既有展示一致，不做语法修正
func TestTimeSinceAtPluralOnly(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "1 minutes ago", TimeSinceAt(now.Add(-90*time.Second), now))
	assert.Equal(t, "1 hours ago", TimeSinceAt(now.Add(-119*time.Minute), now))
	assert.Equal(t, "1 days ago", TimeSinceAt(now.Add(-47*time.Hour), now))
}
