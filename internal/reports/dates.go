package reports

import (
	"strings"
	"time"

	"soloparent/internal/dashboard"
	dErrors "soloparent/pkg/domain-errors"
)

// ValidateDates checks a report's date range. Unlike the dashboard filter both ends are
// required.
func ValidateDates(start, end string, now time.Time) (dashboard.DateRange, error) {
	if strings.TrimSpace(start) == "" {
		return dashboard.DateRange{}, dErrors.NewField("start_date", "start date is required")
	}
	if strings.TrimSpace(end) == "" {
		return dashboard.DateRange{}, dErrors.NewField("end_date", "end date is required")
	}
	return dashboard.ParseRange(start, end, now)
}
