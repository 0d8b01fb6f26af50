package analytics

import (
	"net/http"
	"strings"
	"time"

	pkgerrors "github.com/nmoralesv/shopdesk-backend/pkg/errors"
)

const dateLayout = "2006-01-02"

var timeNowUTC = func() time.Time {
	return time.Now().UTC()
}

// resolveAnalyticsRange turns from/to dates or a preset into an
// inclusive day range. Presets are anchored on today in UTC.
func resolveAnalyticsRange(r *http.Request, now time.Time) (time.Time, time.Time, error) {
	query := r.URL.Query()
	from := strings.TrimSpace(query.Get("from"))
	to := strings.TrimSpace(query.Get("to"))

	if from != "" || to != "" {
		if from == "" || to == "" {
			return time.Time{}, time.Time{}, pkgerrors.New(pkgerrors.CodeValidation, "from and to must be provided together")
		}
		start, err := time.Parse(dateLayout, from)
		if err != nil {
			return time.Time{}, time.Time{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid from date")
		}
		end, err := time.Parse(dateLayout, to)
		if err != nil {
			return time.Time{}, time.Time{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid to date")
		}
		if end.Before(start) {
			return time.Time{}, time.Time{}, pkgerrors.New(pkgerrors.CodeValidation, "to must not be before from")
		}
		return start, end, nil
	}

	preset := strings.TrimSpace(query.Get("preset"))
	days, ok := presetDays(preset)
	if !ok {
		return time.Time{}, time.Time{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid preset")
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	start := today.AddDate(0, 0, -(days - 1))
	return start, today, nil
}

func presetDays(value string) (int, bool) {
	if value == "" {
		value = "30d"
	}
	switch strings.ToLower(value) {
	case "7d":
		return 7, true
	case "30d":
		return 30, true
	case "90d":
		return 90, true
	default:
		return 0, false
	}
}
