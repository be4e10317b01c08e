package validators_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Tai-brother/UthMentor/internal/validators"
)

// Only the parse paths run here; they reject before any DNS lookup.
func TestIsEmailDomainValid_MalformedAddresses(t *testing.T) {
	require.False(t, validators.IsEmailDomainValid("no-at-sign"))
	require.False(t, validators.IsEmailDomainValid("trailing@"))
	require.False(t, validators.IsEmailDomainValid(""))
}
