package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Tai-brother/UthMentor/internal/domain/schedule"
)

func TestParseHM(t *testing.T) {
	m, err := schedule.ParseHM("09:30")
	require.NoError(t, err)
	require.Equal(t, 570, m)

	m, err = schedule.ParseHM("00:00")
	require.NoError(t, err)
	require.Equal(t, 0, m)

	_, err = schedule.ParseHM("9:30am")
	require.Error(t, err)

	_, err = schedule.ParseHM("25:00")
	require.Error(t, err)
}

func TestFormatHM_RoundTrips(t *testing.T) {
	require.Equal(t, "09:30", schedule.FormatHM(570))
	require.Equal(t, "00:00", schedule.FormatHM(0))
	require.Equal(t, "23:30", schedule.FormatHM(1410))
}

func TestValidWindow(t *testing.T) {
	require.NoError(t, schedule.ValidWindow("09:00", "17:00"))
	require.Error(t, schedule.ValidWindow("17:00", "09:00"))
	require.Error(t, schedule.ValidWindow("09:00", "09:00"))
	require.Error(t, schedule.ValidWindow("bad", "09:00"))
}
