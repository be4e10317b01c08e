package schedule

import (
	"strings"
	"time"

	"github.com/Tai-brother/UthMentor/internal/httperr"
)

// Weekday tokens follow the wire format the clients send: upper-case
// English day names, stored comma-joined on the schedule row.

var dayNames = map[string]time.Weekday{
	"MONDAY":    time.Monday,
	"TUESDAY":   time.Tuesday,
	"WEDNESDAY": time.Wednesday,
	"THURSDAY":  time.Thursday,
	"FRIDAY":    time.Friday,
	"SATURDAY":  time.Saturday,
	"SUNDAY":    time.Sunday,
}

func ParseDay(token string) (time.Weekday, error) {
	d, ok := dayNames[strings.ToUpper(strings.TrimSpace(token))]
	if !ok {
		return 0, httperr.ErrInvalid("invalid_day_of_week")
	}
	return d, nil
}

func DayName(d time.Weekday) string {
	return strings.ToUpper(d.String())
}

// JoinDays normalizes a token list into the stored representation.
// Duplicates collapse; order follows Monday-first convention.
func JoinDays(tokens []string) (string, error) {
	seen := map[time.Weekday]bool{}
	for _, t := range tokens {
		d, err := ParseDay(t)
		if err != nil {
			return "", err
		}
		seen[d] = true
	}

	ordered := []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	}

	var names []string
	for _, d := range ordered {
		if seen[d] {
			names = append(names, DayName(d))
		}
	}
	return strings.Join(names, ","), nil
}

func SplitDays(csv string) []string {
	if csv == "" {
		return nil
	}
	return strings.Split(csv, ",")
}

func ContainsDay(csv string, d time.Weekday) bool {
	for _, name := range SplitDays(csv) {
		if name == DayName(d) {
			return true
		}
	}
	return false
}
