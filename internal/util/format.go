package util

import (
	"fmt"
	"time"
)

// FormatDuration renders a span as "1h 4m" or "16m".
func FormatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	hours := minutes / 60
	minutes = minutes % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

// FormatHours renders a span as decimal hours with minute resolution,
// the unit used in summary tables.
func FormatHours(d time.Duration) string {
	return fmt.Sprintf("%.2f", float64(int(d.Minutes()))/60)
}
