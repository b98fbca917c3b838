package refresh

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// RepoQuery returns the qualifier for repositories created in the calendar
// month before now: created:<first of previous month>..<first of this month>.
func RepoQuery(now time.Time) string {
	y, m, _ := now.Date()
	cur := time.Date(y, m, 1, 0, 0, 0, 0, now.Location())
	prev := cur.AddDate(0, -1, 0)
	return fmt.Sprintf("created:%s..%s", prev.Format(dateLayout), cur.Format(dateLayout))
}

// UserQuery returns the qualifier for accounts created after the same day one
// year before now. A day missing from that month clamps to its last day, so
// Feb 29 maps to Feb 28.
func UserQuery(now time.Time) string {
	return "created:>" + yearBefore(now).Format(dateLayout)
}

func yearBefore(t time.Time) time.Time {
	y, m, d := t.Date()
	y--
	if last := daysIn(y, m, t.Location()); d > last {
		d = last
	}
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func daysIn(y int, m time.Month, loc *time.Location) int {
	return time.Date(y, m+1, 0, 0, 0, 0, 0, loc).Day()
}
