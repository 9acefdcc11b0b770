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

type CourseRepository interface {
	Create(ctx context.Context, course *model.Course) error
	Update(ctx context.Context, course *model.Course) error
	Delete(ctx context.Context, id int) error
	FindByID(ctx context.Context, id int) (*model.Course, error)
	List(ctx context.Context) ([]model.Course, error)
	ListByInstructor(ctx context.Context, instructorID string) ([]model.Course, error)
	Exists(ctx context.Context, id int) (bool, error)
}

type pgCourseRepository struct {
	db *sql.DB
}

func NewPgCourseRepository(db *sql.DB) CourseRepository {
	return &pgCourseRepository{db: db}
}

func (r *pgCourseRepository) Create(ctx context.Context, c *model.Course) error {
	query := `INSERT INTO courses (title, slug, description, start_date, end_date, capacity, instructor_id)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          RETURNING id, created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query,
		c.Title, c.Slug, c.Description, c.StartDate, c.EndDate, c.Capacity, c.InstructorID,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // Unique constraint for slug
				return fmt.Errorf("course with this slug already exists: %w", common.ErrConflict)
			}
			if pgErr.Code == "23503" { // Instructor FK
				return fmt.Errorf("instructor does not exist: %w", common.ErrBadRequest)
			}
		}
		return fmt.Errorf("pgCourseRepository.Create: %w", err)
	}
	return nil
}

func (r *pgCourseRepository) Update(ctx context.Context, c *model.Course) error {
	query := `UPDATE courses SET
	            title = $1, slug = $2, description = $3, start_date = $4, end_date = $5,
	            capacity = $6, instructor_id = $7, updated_at = CURRENT_TIMESTAMP
	          WHERE id = $8`
	res, err := r.db.ExecContext(ctx, query,
		c.Title, c.Slug, c.Description, c.StartDate, c.EndDate, c.Capacity, c.InstructorID, c.ID)
	if err != nil {
		return fmt.Errorf("pgCourseRepository.Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgCourseRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("pgCourseRepository.Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgCourseRepository) FindByID(ctx context.Context, id int) (*model.Course, error) {
	query := `
	    SELECT c.id, c.title, c.slug, c.description, c.start_date, c.end_date,
	           c.capacity, c.instructor_id, u.full_name AS instructor_name,
	           c.created_at, c.updated_at
	    FROM courses c
	    LEFT JOIN users u ON c.instructor_id = u.id
	    WHERE c.id = $1`

	course := &model.Course{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&course.ID, &course.Title, &course.Slug, &course.Description, &course.StartDate, &course.EndDate,
		&course.Capacity, &course.InstructorID, &course.InstructorName,
		&course.CreatedAt, &course.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgCourseRepository.FindByID: %w", err)
	}
	return course, nil
}

func (r *pgCourseRepository) List(ctx context.Context) ([]model.Course, error) {
	query := `
	    SELECT c.id, c.title, c.slug, c.description, c.start_date, c.end_date,
	           c.capacity, c.instructor_id, u.full_name AS instructor_name,
	           c.created_at, c.updated_at
	    FROM courses c
	    LEFT JOIN users u ON c.instructor_id = u.id
	    ORDER BY c.created_at DESC`
	return r.queryCourses(ctx, query)
}

func (r *pgCourseRepository) ListByInstructor(ctx context.Context, instructorID string) ([]model.Course, error) {
	query := `
	    SELECT c.id, c.title, c.slug, c.description, c.start_date, c.end_date,
	           c.capacity, c.instructor_id, u.full_name AS instructor_name,
	           c.created_at, c.updated_at
	    FROM courses c
	    LEFT JOIN users u ON c.instructor_id = u.id
	    WHERE c.instructor_id = $1
	    ORDER BY c.created_at DESC`
	return r.queryCourses(ctx, query, instructorID)
}

func (r *pgCourseRepository) queryCourses(ctx context.Context, query string, args ...interface{}) ([]model.Course, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("pgCourseRepository query: %w", err)
	}
	defer rows.Close()

	courses := []model.Course{}
	for rows.Next() {
		var c model.Course
		if err := rows.Scan(&c.ID, &c.Title, &c.Slug, &c.Description, &c.StartDate, &c.EndDate,
			&c.Capacity, &c.InstructorID, &c.InstructorName, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("pgCourseRepository scan: %w", err)
		}
		courses = append(courses, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("pgCourseRepository rows.Err: %w", err)
	}
	return courses, nil
}

func (r *pgCourseRepository) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM courses WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("pgCourseRepository.Exists: %w", err)
	}
	return exists, nil
}
