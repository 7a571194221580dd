package util

import (
	"fmt"
	"time"
)

// TimeSince 把时间戳格式化为 "2 hours ago" 这类相对描述。
// 单位名一律用复数形式（含 "1 hours ago"），与移动端既有展示保持一致。
func TimeSince(t time.Time) string {
	return TimeSinceAt(t, time.Now())
}

func TimeSinceAt(t, now time.Time) string {
	seconds := now.Sub(t).Seconds()

	interval := seconds / 31536000
	if interval > 1 {
		return fmt.Sprintf("%d years ago", int(interval))
	}
	interval = seconds / 2592000
	if interval > 1 {
		return fmt.Sprintf("%d months ago", int(interval))
	}
	interval = seconds / 86400
	if interval > 1 {
		return fmt.Sprintf("%d days ago", int(interval))
	}
	interval = seconds / 3600
	if interval > 1 {
		return fmt.Sprintf("%d hours ago", int(interval))
	}
	interval = seconds / 60
	if interval > 1 {
		return fmt.Sprintf("%d minutes ago", int(interval))
	}
	return "Just now"
}
