package models

import "time"

// Schedule is a mentor's recurring weekly window. Exactly one per mentor;
// times are HH:MM strings local to the mentor, DaysOfWeek a comma-joined
// set of upper-case weekday names (MONDAY,WEDNESDAY,...).
type Schedule struct {
	ID uint `gorm:"primaryKey" json:"id"`

	MentorID uint   `gorm:"uniqueIndex" json:"mentor_id"`
	Mentor   Mentor `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	StartTime  string `gorm:"size:5;not null" json:"start_time"`
	EndTime    string `gorm:"size:5;not null" json:"end_time"`
	DaysOfWeek string `gorm:"size:100;not null" json:"days_of_week"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
