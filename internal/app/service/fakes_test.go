package service

import (
	"context"
	"fmt"
	"time"

	"studybuddy/internal/common"
	"studybuddy/internal/domain/model"
)

// In-memory repository fakes. They mirror the constraint behavior of the
// Postgres implementations: unique email on users, composite-key
// uniqueness on enrollments, ErrNotFound on missing rows.

type fakeUserRepo struct {
	users map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return fmt.Errorf("user with given email already exists: %w", common.ErrConflict)
		}
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *model.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return common.ErrNotFound
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) Exists(_ context.Context, id string) (bool, error) {
	_, ok := r.users[id]
	return ok, nil
}

type fakeCourseRepo struct {
	courses map[int]*model.Course
	nextID  int
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{courses: make(map[int]*model.Course), nextID: 1}
}

func (r *fakeCourseRepo) Create(_ context.Context, course *model.Course) error {
	course.ID = r.nextID
	r.nextID++
	course.CreatedAt = time.Now()
	course.UpdatedAt = course.CreatedAt
	cp := *course
	r.courses[course.ID] = &cp
	return nil
}

func (r *fakeCourseRepo) Update(_ context.Context, course *model.Course) error {
	if _, ok := r.courses[course.ID]; !ok {
		return common.ErrNotFound
	}
	cp := *course
	r.courses[course.ID] = &cp
	return nil
}

func (r *fakeCourseRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.courses[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.courses, id)
	return nil
}

func (r *fakeCourseRepo) FindByID(_ context.Context, id int) (*model.Course, error) {
	c, ok := r.courses[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCourseRepo) List(_ context.Context) ([]model.Course, error) {
	out := make([]model.Course, 0, len(r.courses))
	for _, c := range r.courses {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCourseRepo) ListByInstructor(_ context.Context, instructorID string) ([]model.Course, error) {
	var out []model.Course
	for _, c := range r.courses {
		if c.InstructorID == instructorID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeCourseRepo) Exists(_ context.Context, id int) (bool, error) {
	_, ok := r.courses[id]
	return ok, nil
}

type fakeAssignmentRepo struct {
	assignments map[int]*model.Assignment
	nextID      int
}

func newFakeAssignmentRepo() *fakeAssignmentRepo {
	return &fakeAssignmentRepo{assignments: make(map[int]*model.Assignment), nextID: 1}
}

func (r *fakeAssignmentRepo) Create(_ context.Context, assignment *model.Assignment) error {
	assignment.ID = r.nextID
	r.nextID++
	cp := *assignment
	r.assignments[assignment.ID] = &cp
	return nil
}

func (r *fakeAssignmentRepo) Update(_ context.Context, assignment *model.Assignment) error {
	if _, ok := r.assignments[assignment.ID]; !ok {
		return common.ErrNotFound
	}
	cp := *assignment
	r.assignments[assignment.ID] = &cp
	return nil
}

func (r *fakeAssignmentRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.assignments[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.assignments, id)
	return nil
}

func (r *fakeAssignmentRepo) FindByID(_ context.Context, id int) (*model.Assignment, error) {
	a, ok := r.assignments[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAssignmentRepo) ListByCourse(_ context.Context, courseID int) ([]model.Assignment, error) {
	var out []model.Assignment
	for _, a := range r.assignments {
		if a.CourseID == courseID {
			out = append(out, *a)
		}
	}
	return out, nil
}

type enrollmentKey struct {
	userID   string
	courseID int
}

type fakeEnrollmentRepo struct {
	rows    map[enrollmentKey]time.Time
	users   *fakeUserRepo
	courses *fakeCourseRepo
}

func newFakeEnrollmentRepo(users *fakeUserRepo, courses *fakeCourseRepo) *fakeEnrollmentRepo {
	return &fakeEnrollmentRepo{
		rows:    make(map[enrollmentKey]time.Time),
		users:   users,
		courses: courses,
	}
}

func (r *fakeEnrollmentRepo) Insert(_ context.Context, enrollment *model.Enrollment) error {
	key := enrollmentKey{userID: enrollment.UserID, courseID: enrollment.CourseID}
	if _, ok := r.rows[key]; ok {
		return fmt.Errorf("student already enrolled in course: %w", common.ErrConflict)
	}
	enrollment.EnrolledOn = time.Now()
	r.rows[key] = enrollment.EnrolledOn
	return nil
}

func (r *fakeEnrollmentRepo) Delete(_ context.Context, userID string, courseID int) error {
	key := enrollmentKey{userID: userID, courseID: courseID}
	if _, ok := r.rows[key]; !ok {
		return common.ErrNotFound
	}
	delete(r.rows, key)
	return nil
}

func (r *fakeEnrollmentRepo) StudentsByCourse(_ context.Context, courseID int) ([]model.User, error) {
	var out []model.User
	for key := range r.rows {
		if key.courseID != courseID {
			continue
		}
		if u, ok := r.users.users[key.userID]; ok {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *fakeEnrollmentRepo) CoursesByStudent(_ context.Context, userID string) ([]model.Course, error) {
	var out []model.Course
	for key := range r.rows {
		if key.userID != userID {
			continue
		}
		if c, ok := r.courses.courses[key.courseID]; ok {
			out = append(out, *c)
		}
	}
	return out, nil
}
