package commands

import (
	"time"

	"github.com/dustin/go-humanize"

	"kennel/internal/domain"
)

// FormatCell renders the value of column for display. Date columns are
// relative to now ("3 days ago"); everything else is the raw field.
func FormatCell(r domain.Record, column string, now time.Time) string {
	if ts, ok := r.(timestamped); ok {
		if t, set := ts.Timestamp(column); set {
			return humanize.RelTime(t, now, "ago", "from now")
		}
	}
	return r.Field(column)
}
