package service

import (
	"context"
	"fmt"
	"time"

	"studybuddy/internal/app/authz"
	"studybuddy/internal/common"
	"studybuddy/internal/domain/model"
	"studybuddy/internal/domain/repository"
)

type AssignmentService struct {
	assignmentRepo repository.AssignmentRepository
	courseRepo     repository.CourseRepository
	userRepo       repository.UserRepository
}

func NewAssignmentService(
	assignmentRepo repository.AssignmentRepository,
	courseRepo repository.CourseRepository,
	userRepo repository.UserRepository,
) *AssignmentService {
	return &AssignmentService{
		assignmentRepo: assignmentRepo,
		courseRepo:     courseRepo,
		userRepo:       userRepo,
	}
}

type AssignmentRequest struct {
	CourseID     int       `json:"course_id"`
	Title        string    `json:"title"`
	Instructions string    `json:"instructions"`
	DueDate      time.Time `json:"due_date"`
	MaxScore     float64   `json:"max_score"`
}

func (s *AssignmentService) subject(ctx context.Context, userID string) (authz.Subject, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return authz.Subject{}, fmt.Errorf("failed to resolve acting user: %w", err)
	}
	return authz.Subject{UserID: user.ID, Role: user.Role}, nil
}

// CreateAssignment authorizes against the owning course's instructor:
// only the course owner may author assignments under it.
func (s *AssignmentService) CreateAssignment(ctx context.Context, actingUserID string, req AssignmentRequest) (*model.Assignment, error) {
	if req.Title == "" || req.CourseID == 0 || req.DueDate.IsZero() {
		return nil, common.Errorf("missing required fields for assignment creation: %w", common.ErrBadRequest)
	}

	course, err := s.courseRepo.FindByID(ctx, req.CourseID)
	if err != nil {
		return nil, err
	}

	sub, err := s.subject(ctx, actingUserID)
	if err != nil {
		return nil, err
	}
	if err := authz.Authorize(sub, authz.ActionUpdateCourse, course.InstructorID); err != nil {
		return nil, err
	}

	assignment := &model.Assignment{
		CourseID:     req.CourseID,
		Title:        req.Title,
		Instructions: req.Instructions,
		DueDate:      req.DueDate,
		MaxScore:     req.MaxScore,
	}
	if err := s.assignmentRepo.Create(ctx, assignment); err != nil {
		return nil, common.Errorf("failed to create assignment: %w", err)
	}
	return assignment, nil
}

func (s *AssignmentService) UpdateAssignment(ctx context.Context, actingUserID string, id int, req AssignmentRequest) error {
	assignment, err := s.assignmentRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	course, err := s.courseRepo.FindByID(ctx, assignment.CourseID)
	if err != nil {
		return err
	}

	sub, err := s.subject(ctx, actingUserID)
	if err != nil {
		return err
	}
	if err := authz.Authorize(sub, authz.ActionUpdateAssignment, course.InstructorID); err != nil {
		return err
	}

	if req.Title == "" || req.DueDate.IsZero() {
		return common.Errorf("missing required fields for assignment update: %w", common.ErrBadRequest)
	}

	assignment.Title = req.Title
	assignment.Instructions = req.Instructions
	assignment.DueDate = req.DueDate
	assignment.MaxScore = req.MaxScore

	if err := s.assignmentRepo.Update(ctx, assignment); err != nil {
		return common.Errorf("failed to update assignment: %w", err)
	}
	return nil
}

func (s *AssignmentService) DeleteAssignment(ctx context.Context, actingUserID string, id int) error {
	assignment, err := s.assignmentRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	course, err := s.courseRepo.FindByID(ctx, assignment.CourseID)
	if err != nil {
		return err
	}

	sub, err := s.subject(ctx, actingUserID)
	if err != nil {
		return err
	}
	if err := authz.Authorize(sub, authz.ActionDeleteAssignment, course.InstructorID); err != nil {
		return err
	}

	return s.assignmentRepo.Delete(ctx, id)
}

func (s *AssignmentService) GetAssignment(ctx context.Context, id int) (*model.Assignment, error) {
	return s.assignmentRepo.FindByID(ctx, id)
}

func (s *AssignmentService) ListAssignmentsByCourse(ctx context.Context, courseID int) ([]model.Assignment, error) {
	return s.assignmentRepo.ListByCourse(ctx, courseID)
}
