package sitemap

import (
	"strconv"
	"time"
)

// timeLayout is RFC 3339 with seconds precision and a numeric offset.
// time.RFC3339 would print "Z" for UTC.
const timeLayout = "2006-01-02T15:04:05-07:00"

func formatTime(t time.Time) string {
	return t.Format(timeLayout)
}

func formatBool(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// formatFloat prints the shortest representation that round-trips (0.8, 4.2, 1)
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
