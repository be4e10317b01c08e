package models

import "time"

type Mentor struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"uniqueIndex" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	FullName string `gorm:"size:200;not null" json:"full_name"`

	FieldID uint  `json:"field_id"`
	Field   Field `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"field"`

	Fee         float64 `json:"fee"`
	Description string  `gorm:"size:1000" json:"description"`
	ImageURL    string  `gorm:"size:500" json:"image_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
