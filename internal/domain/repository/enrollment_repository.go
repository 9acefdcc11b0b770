package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"studybuddy/internal/common"
	"studybuddy/internal/domain/model"

	"github.com/jackc/pgx/v5/pgconn"
)

type EnrollmentRepository interface {
	// Insert relies on the (user_id, course_id) composite primary key for
	// uniqueness; a duplicate pair comes back as common.ErrConflict.
	Insert(ctx context.Context, enrollment *model.Enrollment) error
	Delete(ctx context.Context, userID string, courseID int) error
	StudentsByCourse(ctx context.Context, courseID int) ([]model.User, error)
	CoursesByStudent(ctx context.Context, userID string) ([]model.Course, error)
}

type pgEnrollmentRepository struct {
	db *sql.DB
}

func NewPgEnrollmentRepository(db *sql.DB) EnrollmentRepository {
	return &pgEnrollmentRepository{db: db}
}

func (r *pgEnrollmentRepository) Insert(ctx context.Context, e *model.Enrollment) error {
	query := `INSERT INTO enrollments (user_id, course_id)
	          VALUES ($1, $2)
	          RETURNING enrolled_on`
	err := r.db.QueryRowContext(ctx, query, e.UserID, e.CourseID).Scan(&e.EnrolledOn)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // Composite key violation
				return fmt.Errorf("student already enrolled in course: %w", common.ErrConflict)
			}
			if pgErr.Code == "23503" { // Referenced user or course vanished after pre-check
				return fmt.Errorf("referenced user or course does not exist: %w", common.ErrBadRequest)
			}
		}
		return fmt.Errorf("pgEnrollmentRepository.Insert: %w", err)
	}
	return nil
}

func (r *pgEnrollmentRepository) Delete(ctx context.Context, userID string, courseID int) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM enrollments WHERE user_id = $1 AND course_id = $2`, userID, courseID)
	if err != nil {
		return fmt.Errorf("pgEnrollmentRepository.Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgEnrollmentRepository) StudentsByCourse(ctx context.Context, courseID int) ([]model.User, error) {
	query := `
	    SELECT u.id, u.email, u.full_name, u.role, u.created_at, u.updated_at
	    FROM enrollments e
	    JOIN users u ON e.user_id = u.id
	    WHERE e.course_id = $1
	    ORDER BY e.enrolled_on ASC`
	rows, err := r.db.QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("pgEnrollmentRepository.StudentsByCourse query: %w", err)
	}
	defer rows.Close()

	students := []model.User{}
	for rows.Next() {
		var u model.User
		var role string
		if err := rows.Scan(&u.ID, &u.Email, &u.FullName, &role, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("pgEnrollmentRepository.StudentsByCourse scan: %w", err)
		}
		u.Role = model.ParseRole(role)
		students = append(students, u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("pgEnrollmentRepository.StudentsByCourse rows.Err: %w", err)
	}
	return students, nil
}

func (r *pgEnrollmentRepository) CoursesByStudent(ctx context.Context, userID string) ([]model.Course, error) {
	query := `
	    SELECT c.id, c.title, c.slug, c.description, c.start_date, c.end_date,
	           c.capacity, c.instructor_id, c.created_at, c.updated_at
	    FROM enrollments e
	    JOIN courses c ON e.course_id = c.id
	    WHERE e.user_id = $1
	    ORDER BY e.enrolled_on ASC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("pgEnrollmentRepository.CoursesByStudent query: %w", err)
	}
	defer rows.Close()

	courses := []model.Course{}
	for rows.Next() {
		var c model.Course
		if err := rows.Scan(&c.ID, &c.Title, &c.Slug, &c.Description, &c.StartDate, &c.EndDate,
			&c.Capacity, &c.InstructorID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("pgEnrollmentRepository.CoursesByStudent scan: %w", err)
		}
		courses = append(courses, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("pgEnrollmentRepository.CoursesByStudent rows.Err: %w", err)
	}
	return courses, nil
}
