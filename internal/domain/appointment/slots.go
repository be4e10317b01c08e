package appointment

import (
	schedule "github.com/Tai-brother/UthMentor/internal/domain/schedule"
)

// SlotMinutes is the fixed bookable unit.
const SlotMinutes = 30

// CandidateSlots generates start-of-slot times inside a weekly window,
// stepping 30 minutes while candidate < end - 30. The strict bound is
// deliberate: the last generated candidate always keeps a full slot of
// headroom before the window closes. A malformed stored time is an
// error, not an empty window.
func CandidateSlots(startHM, endHM string) ([]string, error) {
	start, err := schedule.ParseHM(startHM)
	if err != nil {
		return nil, err
	}
	end, err := schedule.ParseHM(endHM)
	if err != nil {
		return nil, err
	}

	var slots []string
	for cur := start; cur < end-SlotMinutes; cur += SlotMinutes {
		slots = append(slots, schedule.FormatHM(cur))
	}
	return slots, nil
}
