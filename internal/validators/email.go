package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid checks at registration time that the address's
// domain can actually receive mail: an MX record, or failing that any
// A/AAAA record. It is a liveness probe, not RFC validation; format
// checking stays with the request binding.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	// Some small domains run mail on the bare host.
	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
