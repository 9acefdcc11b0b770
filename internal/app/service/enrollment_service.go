package service

import (
	"context"
	"errors"

	"studybuddy/internal/common"
	"studybuddy/internal/domain/model"
	"studybuddy/internal/domain/repository"
)

// EnrollmentService enforces the enrollment invariants: the course and
// the student must exist at enrollment time, and at most one enrollment
// may exist per (user, course) pair. The existence pre-checks and the
// insert are separate steps with no shared transaction; concurrent
// enrolls for the same pair race at the insert and the composite primary
// key decides the winner, surfacing the loser as ErrConflict.
type EnrollmentService struct {
	enrollmentRepo repository.EnrollmentRepository
	courseRepo     repository.CourseRepository
	userRepo       repository.UserRepository
}

func NewEnrollmentService(
	enrollmentRepo repository.EnrollmentRepository,
	courseRepo repository.CourseRepository,
	userRepo repository.UserRepository,
) *EnrollmentService {
	return &EnrollmentService{
		enrollmentRepo: enrollmentRepo,
		courseRepo:     courseRepo,
		userRepo:       userRepo,
	}
}

type EnrollmentRequest struct {
	CourseID  int    `json:"course_id"`
	StudentID string `json:"student_id"`
}

// Capacity is recorded on the course but deliberately not consulted
// here; a course can hold more enrollments than its stated capacity.
func (s *EnrollmentService) Enroll(ctx context.Context, req EnrollmentRequest) error {
	if req.CourseID == 0 || req.StudentID == "" {
		return common.ErrBadRequest
	}

	courseExists, err := s.courseRepo.Exists(ctx, req.CourseID)
	if err != nil {
		return common.Errorf("failed to check course: %w", err)
	}
	if !courseExists {
		return common.Errorf("course not found: %w", common.ErrNotFound)
	}

	studentExists, err := s.userRepo.Exists(ctx, req.StudentID)
	if err != nil {
		return common.Errorf("failed to check student: %w", err)
	}
	if !studentExists {
		return common.Errorf("student not found: %w", common.ErrNotFound)
	}

	enrollment := &model.Enrollment{
		UserID:   req.StudentID,
		CourseID: req.CourseID,
	}
	if err := s.enrollmentRepo.Insert(ctx, enrollment); err != nil {
		// Duplicate pair arrives here as ErrConflict from the repository.
		return err
	}
	return nil
}

func (s *EnrollmentService) Unenroll(ctx context.Context, req EnrollmentRequest) error {
	if req.CourseID == 0 || req.StudentID == "" {
		return common.ErrBadRequest
	}
	if err := s.enrollmentRepo.Delete(ctx, req.StudentID, req.CourseID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.Errorf("enrollment not found: %w", common.ErrNotFound)
		}
		return err
	}
	return nil
}

func (s *EnrollmentService) StudentsByCourse(ctx context.Context, courseID int) ([]model.User, error) {
	return s.enrollmentRepo.StudentsByCourse(ctx, courseID)
}

func (s *EnrollmentService) CoursesByStudent(ctx context.Context, studentID string) ([]model.Course, error) {
	return s.enrollmentRepo.CoursesByStudent(ctx, studentID)
}
