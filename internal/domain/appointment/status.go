package appointment

import (
	"strings"

	"github.com/Tai-brother/UthMentor/internal/httperr"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// InitialStatus is the status every freshly booked appointment gets.
func InitialStatus() Status {
	return StatusPending
}

// ===============================
// Payment Method
// ===============================

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "CASH"
	PaymentOnline PaymentMethod = "ONLINE"
)

func ParsePaymentMethod(token string) (PaymentMethod, error) {
	switch PaymentMethod(strings.ToUpper(strings.TrimSpace(token))) {
	case PaymentCash:
		return PaymentCash, nil
	case PaymentOnline:
		return PaymentOnline, nil
	default:
		return "", httperr.ErrInvalid("invalid_payment_method")
	}
}
