package touchat

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/n2code/touchat/internal"
)

// DateLayout names one of the accepted fixed-width date shapes.
type DateLayout string

const (
	LongDate  DateLayout = "YYYYMMDD"
	ShortDate DateLayout = "YYMMDD"
	MonthDay  DateLayout = "MMDD" //year is the current year
)

// two-digit years below the pivot belong to the 2000s, all others to the 1900s
const centuryPivot = 69

var dateShapes = []struct {
	pattern *regexp.Regexp
	layout  DateLayout
}{
	{regexp.MustCompile(`^\d{8}$`), LongDate},
	{regexp.MustCompile(`^\d{6}$`), ShortDate},
	{regexp.MustCompile(`^\d{4}$`), MonthDay},
}

// ClassifyDate determines which layout the token has, the first matching shape wins.
func ClassifyDate(token string) (layout DateLayout, ok bool) {
	for _, shape := range dateShapes {
		if shape.pattern.MatchString(token) {
			return shape.layout, true
		}
	}
	return "", false
}

// ParseDate interprets a YYYYMMDD, YYMMDD or MMDD token as midnight of that day in local time.
// Calendar values are checked strictly, nothing is clamped or rolled over.
func ParseDate(token string) (time.Time, error) {
	layout, ok := ClassifyDate(token)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %q", ErrDateFormat, token)
	}

	year := internal.Now().Year()
	monthDay := token
	switch layout {
	case LongDate:
		year = mustAtoi(token[:4])
		monthDay = token[4:]
	case ShortDate:
		year = expandTwoDigitYear(mustAtoi(token[:2]))
		monthDay = token[2:]
	}
	month := mustAtoi(monthDay[:2])
	day := mustAtoi(monthDay[2:])

	if year < 1 || month < 1 || month > 12 || day < 1 || day > daysIn(time.Month(month), year) {
		return time.Time{}, fmt.Errorf("%w: %q read as %s gives year %d, month %d, day %d", ErrDateInvalid, token, layout, year, month, day)
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), nil
}

func expandTwoDigitYear(yy int) int {
	if yy < centuryPivot {
		return 2000 + yy
	}
	return 1900 + yy
}

func daysIn(month time.Month, year int) int {
	//day 0 of the following month is the last day of the given one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func mustAtoi(digits string) int {
	n, err := strconv.Atoi(digits)
	internal.AssertNoError(err, "token shape guarantees ASCII digits only")
	return n
}
