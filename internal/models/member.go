package models

import "time"

// Member is created lazily: a USER gets one on their first booking.
type Member struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"uniqueIndex" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	FirstName   string     `gorm:"size:100" json:"first_name"`
	LastName    string     `gorm:"size:100" json:"last_name"`
	Email       string     `gorm:"size:100" json:"email"`
	Username    string     `gorm:"size:100" json:"username"`
	PhoneNumber string     `gorm:"size:20" json:"phone_number"`
	Address     string     `gorm:"size:255" json:"address"`
	Dob         *time.Time `json:"dob"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
