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

type AssignmentRepository interface {
	Create(ctx context.Context, assignment *model.Assignment) error
	Update(ctx context.Context, assignment *model.Assignment) error
	Delete(ctx context.Context, id int) error
	FindByID(ctx context.Context, id int) (*model.Assignment, error)
	ListByCourse(ctx context.Context, courseID int) ([]model.Assignment, error)
}

type pgAssignmentRepository struct {
	db *sql.DB
}

func NewPgAssignmentRepository(db *sql.DB) AssignmentRepository {
	return &pgAssignmentRepository{db: db}
}

func (r *pgAssignmentRepository) Create(ctx context.Context, a *model.Assignment) error {
	query := `INSERT INTO assignments (course_id, title, instructions, due_date, max_score)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id, created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query,
		a.CourseID, a.Title, a.Instructions, a.DueDate, a.MaxScore,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // Course FK
			return fmt.Errorf("course does not exist: %w", common.ErrBadRequest)
		}
		return fmt.Errorf("pgAssignmentRepository.Create: %w", err)
	}
	return nil
}

func (r *pgAssignmentRepository) Update(ctx context.Context, a *model.Assignment) error {
	query := `UPDATE assignments SET
	            title = $1, instructions = $2, due_date = $3, max_score = $4, updated_at = CURRENT_TIMESTAMP
	          WHERE id = $5`
	res, err := r.db.ExecContext(ctx, query, a.Title, a.Instructions, a.DueDate, a.MaxScore, a.ID)
	if err != nil {
		return fmt.Errorf("pgAssignmentRepository.Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgAssignmentRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM assignments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("pgAssignmentRepository.Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgAssignmentRepository) FindByID(ctx context.Context, id int) (*model.Assignment, error) {
	query := `SELECT id, course_id, title, instructions, due_date, max_score, created_at, updated_at
	          FROM assignments WHERE id = $1`
	a := &model.Assignment{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&a.ID, &a.CourseID, &a.Title, &a.Instructions, &a.DueDate, &a.MaxScore, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgAssignmentRepository.FindByID: %w", err)
	}
	return a, nil
}

func (r *pgAssignmentRepository) ListByCourse(ctx context.Context, courseID int) ([]model.Assignment, error) {
	query := `SELECT id, course_id, title, instructions, due_date, max_score, created_at, updated_at
	          FROM assignments WHERE course_id = $1 ORDER BY due_date ASC`
	rows, err := r.db.QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("pgAssignmentRepository.ListByCourse query: %w", err)
	}
	defer rows.Close()

	assignments := []model.Assignment{}
	for rows.Next() {
		var a model.Assignment
		if err := rows.Scan(&a.ID, &a.CourseID, &a.Title, &a.Instructions, &a.DueDate, &a.MaxScore, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("pgAssignmentRepository.ListByCourse scan: %w", err)
		}
		assignments = append(assignments, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("pgAssignmentRepository.ListByCourse rows.Err: %w", err)
	}
	return assignments, nil
}
