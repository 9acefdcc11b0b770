package service

import (
	"context"
	"fmt"
	"time"

	"studybuddy/internal/app/authz"
	"studybuddy/internal/common"
	"studybuddy/internal/domain/model"
	"studybuddy/internal/domain/repository"

	"github.com/gosimple/slug"
)

type CourseService struct {
	courseRepo repository.CourseRepository
	userRepo   repository.UserRepository
}

func NewCourseService(courseRepo repository.CourseRepository, userRepo repository.UserRepository) *CourseService {
	return &CourseService{courseRepo: courseRepo, userRepo: userRepo}
}

type CourseRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Capacity    int        `json:"capacity"`
}

// subject loads the acting user's role projection. The bearer token
// carries no role claim, so mutations resolve it per call.
func (s *CourseService) subject(ctx context.Context, userID string) (authz.Subject, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return authz.Subject{}, fmt.Errorf("failed to resolve acting user: %w", err)
	}
	return authz.Subject{UserID: user.ID, Role: user.Role}, nil
}

func (s *CourseService) CreateCourse(ctx context.Context, actingUserID string, req CourseRequest) (*model.Course, error) {
	if req.Title == "" || req.StartDate.IsZero() {
		return nil, common.Errorf("missing required fields for course creation: %w", common.ErrBadRequest)
	}

	sub, err := s.subject(ctx, actingUserID)
	if err != nil {
		return nil, err
	}
	if err := authz.Authorize(sub, authz.ActionCreateCourse, actingUserID); err != nil {
		return nil, err
	}

	course := &model.Course{
		Title:        req.Title,
		Slug:         slug.Make(req.Title),
		Description:  req.Description,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Capacity:     req.Capacity,
		InstructorID: actingUserID,
	}
	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, common.Errorf("failed to create course: %w", err)
	}
	return course, nil
}

func (s *CourseService) UpdateCourse(ctx context.Context, actingUserID string, id int, req CourseRequest) error {
	course, err := s.courseRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	sub, err := s.subject(ctx, actingUserID)
	if err != nil {
		return err
	}
	if err := authz.Authorize(sub, authz.ActionUpdateCourse, course.InstructorID); err != nil {
		return err
	}

	if req.Title == "" || req.StartDate.IsZero() {
		return common.Errorf("missing required fields for course update: %w", common.ErrBadRequest)
	}

	course.Title = req.Title
	course.Slug = slug.Make(req.Title)
	course.Description = req.Description
	course.StartDate = req.StartDate
	course.EndDate = req.EndDate
	course.Capacity = req.Capacity

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return common.Errorf("failed to update course: %w", err)
	}
	return nil
}

func (s *CourseService) DeleteCourse(ctx context.Context, actingUserID string, id int) error {
	course, err := s.courseRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	sub, err := s.subject(ctx, actingUserID)
	if err != nil {
		return err
	}
	if err := authz.Authorize(sub, authz.ActionDeleteCourse, course.InstructorID); err != nil {
		return err
	}

	return s.courseRepo.Delete(ctx, id)
}

func (s *CourseService) GetCourse(ctx context.Context, id int) (*model.Course, error) {
	return s.courseRepo.FindByID(ctx, id)
}

func (s *CourseService) ListCourses(ctx context.Context) ([]model.Course, error) {
	return s.courseRepo.List(ctx)
}

func (s *CourseService) ListCoursesByInstructor(ctx context.Context, instructorID string) ([]model.Course, error) {
	return s.courseRepo.ListByInstructor(ctx, instructorID)
}
