package dto

// AppointmentDto is the booking result enriched with read-only derived
// fields: display names, the member's age at call time, the mentor's
// field and whether the member already reviewed this mentor.
type AppointmentDto struct {
	ID       uint `json:"id"`
	MentorID uint `json:"mentor_id"`
	MemberID uint `json:"member_id"`

	Date string `json:"date"`
	Time string `json:"time"`

	Note   string `json:"note"`
	Reason string `json:"reason"`

	Status        string `json:"status"`
	PaymentMethod string `json:"payment_method"`

	MemberName  string `json:"member_name"`
	MemberPhone string `json:"member_phone"`
	MemberEmail string `json:"member_email"`
	MemberAge   int    `json:"member_age"`

	MentorName string `json:"mentor_name"`
	FieldName  string `json:"field_name"`

	HasReview bool `json:"has_review"`
}

type BookingResult struct {
	Appointment AppointmentDto `json:"appointment"`
	PaymentURL  string         `json:"payment_url,omitempty"`
}
