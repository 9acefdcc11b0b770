package model

import "time"

// Enrollment links one user to one course. Identity is the
// (user_id, course_id) pair; the composite primary key in the store is
// what ultimately enforces uniqueness.
type Enrollment struct {
	UserID     string    `json:"user_id"`
	CourseID   int       `json:"course_id"`
	EnrolledOn time.Time `json:"enrolled_on"`
}
