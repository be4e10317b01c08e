package models

import "time"

// Review: one per (member, mentor) pair, rating 1..5.
type Review struct {
	ID uint `gorm:"primaryKey" json:"id"`

	MemberID uint   `gorm:"uniqueIndex:idx_member_mentor_review" json:"member_id"`
	Member   Member `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	MentorID uint   `gorm:"uniqueIndex:idx_member_mentor_review" json:"mentor_id"`
	Mentor   Mentor `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Rating  int    `gorm:"not null" json:"rating"`
	Comment string `gorm:"size:1000" json:"comment"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
