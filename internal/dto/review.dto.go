package dto

import "time"

type ReviewDto struct {
	MentorID   uint      `json:"mentor_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	MemberName string    `json:"member_name"`
	CreatedAt  time.Time `json:"created_at"`
}
