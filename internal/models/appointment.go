package models

import "time"

// Appointment holds a booked 30-minute slot. The composite unique index on
// (mentor_id, date, time) is the hard guarantee against double booking; the
// in-code availability check is only an optimistic pre-filter.
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	MentorID uint   `gorm:"uniqueIndex:idx_mentor_slot" json:"mentor_id"`
	Mentor   Mentor `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	MemberID uint   `json:"member_id"`
	Member   Member `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Date string `gorm:"size:10;uniqueIndex:idx_mentor_slot" json:"date"`
	Time string `gorm:"size:5;uniqueIndex:idx_mentor_slot" json:"time"`

	Note   string `gorm:"size:255" json:"note"`
	Reason string `gorm:"size:255" json:"reason"`

	Status        string `gorm:"size:20;default:'PENDING'" json:"status"`
	PaymentMethod string `gorm:"size:20" json:"payment_method"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
