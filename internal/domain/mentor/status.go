package mentor

import (
	"strings"

	"github.com/Tai-brother/UthMentor/internal/httperr"
)

// ===============================
// Mentor Request Status
// ===============================

// A request starts PENDING and moves forward exactly once, to APPROVED
// or REJECTED. Both are terminal.

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func ParseStatus(token string) (Status, error) {
	switch Status(strings.ToUpper(strings.TrimSpace(token))) {
	case StatusPending:
		return StatusPending, nil
	case StatusApproved:
		return StatusApproved, nil
	case StatusRejected:
		return StatusRejected, nil
	default:
		return "", httperr.ErrInvalid("invalid_status")
	}
}

func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// MinFee: a request's fee must be strictly above this floor.
const MinFee = 100000.0
