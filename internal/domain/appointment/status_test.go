package appointment_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Tai-brother/UthMentor/internal/domain/appointment"
	"github.com/Tai-brother/UthMentor/internal/httperr"
)

func TestParsePaymentMethod(t *testing.T) {
	m, err := appointment.ParsePaymentMethod("cash")
	require.NoError(t, err)
	require.Equal(t, appointment.PaymentCash, m)

	m, err = appointment.ParsePaymentMethod(" ONLINE ")
	require.NoError(t, err)
	require.Equal(t, appointment.PaymentOnline, m)

	_, err = appointment.ParsePaymentMethod("bitcoin")
	require.Error(t, err)
	require.True(t, httperr.IsKind(err, httperr.KindInvalid))
}

func TestInitialStatus(t *testing.T) {
	require.Equal(t, appointment.StatusPending, appointment.InitialStatus())
}
