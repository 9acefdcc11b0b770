package model

import "time"

type Course struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`

	// Capacity is recorded but not checked against the enrollment count.
	Capacity int `json:"capacity"`

	InstructorID   string  `json:"instructor_id"`
	InstructorName *string `json:"instructor_name,omitempty"` // For display

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
