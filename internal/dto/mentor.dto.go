package dto

import "time"

type MentorDto struct {
	ID       uint   `json:"id"`
	FullName string `json:"full_name"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	Phone     string `json:"phone_number"`

	FieldID   uint   `json:"field_id"`
	FieldName string `json:"field_name"`

	Fee         float64 `json:"fee"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`

	// Rounded mean of all ratings; 0.0 without reviews.
	Rating float64 `json:"rating"`

	StartTime  string   `json:"start_time,omitempty"`
	EndTime    string   `json:"end_time,omitempty"`
	DaysOfWeek []string `json:"days_of_week,omitempty"`
}

type UserInfoDto struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type FieldInfoDto struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type MentorRequestDto struct {
	ID     uint   `json:"id"`
	Status string `json:"status"`

	User  UserInfoDto  `json:"user"`
	Field FieldInfoDto `json:"field"`

	StartTime  string   `json:"start_time"`
	EndTime    string   `json:"end_time"`
	DaysOfWeek []string `json:"days_of_week"`

	Fee         float64 `json:"fee"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`

	CreatedAt time.Time `json:"created_at"`
}
