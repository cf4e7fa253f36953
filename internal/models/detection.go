package models

import "time"

// Detection is a per-keyword alert count by source.
type Detection struct {
	Keyword    string
	Source     string
	Count      int64
	LastSeenAt time.Time
}
