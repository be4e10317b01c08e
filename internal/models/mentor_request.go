package models

import "time"

type MentorRequest struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	FieldID uint  `json:"field_id"`
	Field   Field `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"field"`

	StartTime  string `gorm:"size:5;not null" json:"start_time"`
	EndTime    string `gorm:"size:5;not null" json:"end_time"`
	DaysOfWeek string `gorm:"size:100;not null" json:"days_of_week"`

	Fee         float64 `json:"fee"`
	Description string  `gorm:"size:1000" json:"description"`
	ImageURL    string  `gorm:"size:500" json:"image_url"`

	Status string `gorm:"size:20;default:'PENDING'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
