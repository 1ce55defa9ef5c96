package output

import (
	"fmt"
	"time"
)

func Plural(count int, singular string, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}

// Count renders "1 entry" or "3 entries".
func Count(n int, singular string, plural string) string {
	return fmt.Sprintf("%d %s", n, Plural(n, singular, plural))
}

const dateLayout = "2006-01-02"
const timestampLayout = "2006-01-02 15:04:05"

func Date(t time.Time) string {
	return t.Format(dateLayout)
}

func Timestamp(t time.Time) string {
	return t.Format(timestampLayout)
}
