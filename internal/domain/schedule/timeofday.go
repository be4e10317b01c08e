package schedule

import (
	"fmt"
	"time"

	"github.com/Tai-brother/UthMentor/internal/httperr"
)

// ParseHM converts an HH:MM string to minutes from midnight.
func ParseHM(hm string) (int, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, httperr.ErrInvalid("invalid_time")
	}
	return t.Hour()*60 + t.Minute(), nil
}

func FormatHM(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ValidWindow requires start strictly before end.
func ValidWindow(startHM, endHM string) error {
	start, err := ParseHM(startHM)
	if err != nil {
		return err
	}
	end, err := ParseHM(endHM)
	if err != nil {
		return err
	}
	if start >= end {
		return httperr.ErrInvalid("start_after_end")
	}
	return nil
}
