package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Tai-brother/UthMentor/internal/domain/schedule"
)

func TestParseDay(t *testing.T) {
	d, err := schedule.ParseDay("monday")
	require.NoError(t, err)
	require.Equal(t, time.Monday, d)

	d, err = schedule.ParseDay(" SUNDAY ")
	require.NoError(t, err)
	require.Equal(t, time.Sunday, d)

	_, err = schedule.ParseDay("someday")
	require.Error(t, err)
}

func TestJoinDays_NormalizesAndOrders(t *testing.T) {
	csv, err := schedule.JoinDays([]string{"friday", "MONDAY", "friday", "wednesday"})
	require.NoError(t, err)
	require.Equal(t, "MONDAY,WEDNESDAY,FRIDAY", csv)
}

func TestJoinDays_RejectsUnknownToken(t *testing.T) {
	_, err := schedule.JoinDays([]string{"MONDAY", "caturday"})
	require.Error(t, err)
}

func TestContainsDay(t *testing.T) {
	csv := "MONDAY,WEDNESDAY,FRIDAY"
	require.True(t, schedule.ContainsDay(csv, time.Wednesday))
	require.False(t, schedule.ContainsDay(csv, time.Sunday))
	require.False(t, schedule.ContainsDay("", time.Monday))
}

func TestSplitDays(t *testing.T) {
	require.Nil(t, schedule.SplitDays(""))
	require.Equal(t, []string{"MONDAY", "FRIDAY"}, schedule.SplitDays("MONDAY,FRIDAY"))
}
