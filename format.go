package uuidv1

import (
	"regexp"
	"time"
)

// CalendarLayout is the accepted input layout for calendar timestamps:
// UTC, one to six fractional digits, literal Z.
const CalendarLayout = "2006-01-02T15:04:05.999999Z"

var calendarPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{1,6}Z$`)

// ParseCalendar parses s in CalendarLayout. Any other shape, or an
// out-of-range field such as month 13, fails with a KindFormat error.
func ParseCalendar(s string) (time.Time, error) {
	if !calendarPattern.MatchString(s) {
		return time.Time{}, newError(KindFormat, s, "want YYYY-MM-DDTHH:MM:SS.ffffffZ")
	}
	t, err := time.Parse(CalendarLayout, s)
	if err != nil {
		return time.Time{}, &Error{Kind: KindFormat, Input: s, Err: err}
	}
	return t, nil
}

// FormatCalendar renders t in UTC as "YYYY-MM-DD HH:MM:SS[.ffffff]", with
// the fraction present only when t has a non-zero microsecond part.
func FormatCalendar(t time.Time) string {
	t = t.UTC()
	if t.Nanosecond()/1000 == 0 {
		return t.Format("2006-01-02 15:04:05")
	}
	return t.Format("2006-01-02 15:04:05.000000")
}

// FormatISO renders t in UTC with six fractional digits, a form
// ParseCalendar accepts.
func FormatISO(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000000Z")
}
