package model

import "time"

type Assignment struct {
	ID           int       `json:"id"`
	CourseID     int       `json:"course_id"`
	Title        string    `json:"title"`
	Instructions string    `json:"instructions"`
	DueDate      time.Time `json:"due_date"`
	MaxScore     float64   `json:"max_score"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
