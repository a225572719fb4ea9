package qif

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	isoPattern   = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	slashPattern = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{2}|\d{4})$`)
	dashPattern  = regexp.MustCompile(`^(\d{1,2})-(\d{1,2})-(\d{2}|\d{4})$`)
)

// NormalizeDate resolves a QIF date token into a calendar date at UTC midnight.
// No timezone is attached to the source data, so all arithmetic stays in
// calendar-date space.
//
// Recognized forms, in order: ISO YYYY-M-D, then slash- or dash-delimited
// A/B/Y with a 2- or 4-digit year. Two-digit years below 50 are 20YY, the
// rest 19YY. When both A and B could be a month, A is taken as the day
// (day-first, the AU/UK convention the exported files use). Anything else
// falls back to now's calendar date rather than failing the import.
func NormalizeDate(token string, now time.Time) time.Time {
	s := strings.TrimSpace(token)

	if m := isoPattern.FindStringSubmatch(s); m != nil {
		return civilDate(atoi(m[1]), atoi(m[2]), atoi(m[3]))
	}

	m := slashPattern.FindStringSubmatch(s)
	if m == nil {
		m = dashPattern.FindStringSubmatch(s)
	}
	if m != nil {
		a, b, year := atoi(m[1]), atoi(m[2]), atoi(m[3])
		if year < 100 {
			if year < 50 {
				year += 2000
			} else {
				year += 1900
			}
		}
		day, month := resolveDayMonth(a, b)
		return civilDate(year, month, day)
	}

	return civilDate(now.Year(), int(now.Month()), now.Day())
}

// resolveDayMonth disambiguates the first two components of A/B/Y.
// A component above 12 can only be a day. When both are 12 or less the
// token is genuinely ambiguous and day-first wins.
func resolveDayMonth(a, b int) (day, month int) {
	switch {
	case a > 12 && b <= 12:
		return a, b
	case b > 12 && a <= 12:
		return b, a
	default:
		return a, b
	}
}

// FormatDate renders a calendar date as zero-padded YYYY-MM-DD.
func FormatDate(d time.Time) string {
	return d.Format("2006-01-02")
}

// MonthKey renders the YYYY-MM bucket key for a calendar date.
func MonthKey(d time.Time) string {
	return d.Format("2006-01")
}

func civilDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
