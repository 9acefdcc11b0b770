package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"studybuddy/internal/common"
	"studybuddy/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEnrollmentFixture(t *testing.T) (*EnrollmentService, *fakeUserRepo, *fakeCourseRepo, *fakeEnrollmentRepo) {
	t.Helper()
	userRepo := newFakeUserRepo()
	courseRepo := newFakeCourseRepo()
	enrollmentRepo := newFakeEnrollmentRepo(userRepo, courseRepo)
	svc := NewEnrollmentService(enrollmentRepo, courseRepo, userRepo)
	return svc, userRepo, courseRepo, enrollmentRepo
}

func seedStudent(t *testing.T, userRepo *fakeUserRepo, id string) {
	t.Helper()
	err := userRepo.Create(context.Background(), &model.User{
		ID:       id,
		Email:    id + "@example.com",
		FullName: "Student " + id,
		Role:     model.RoleStudent,
	})
	require.NoError(t, err)
}

func seedCourse(t *testing.T, courseRepo *fakeCourseRepo, capacity int) int {
	t.Helper()
	course := &model.Course{
		Title:        "Intro to Databases",
		Slug:         "intro-to-databases",
		StartDate:    time.Now(),
		Capacity:     capacity,
		InstructorID: "instructor-1",
	}
	require.NoError(t, courseRepo.Create(context.Background(), course))
	return course.ID
}

func TestEnrollSuccess(t *testing.T) {
	svc, userRepo, courseRepo, enrollmentRepo := newEnrollmentFixture(t)
	seedStudent(t, userRepo, "student-1")
	courseID := seedCourse(t, courseRepo, 30)

	err := svc.Enroll(context.Background(), EnrollmentRequest{CourseID: courseID, StudentID: "student-1"})
	require.NoError(t, err)
	assert.Len(t, enrollmentRepo.rows, 1)
}

func TestEnrollCourseMissing(t *testing.T) {
	svc, userRepo, _, _ := newEnrollmentFixture(t)
	seedStudent(t, userRepo, "student-1")

	err := svc.Enroll(context.Background(), EnrollmentRequest{CourseID: 99, StudentID: "student-1"})
	require.ErrorIs(t, err, common.ErrNotFound)
	assert.Contains(t, err.Error(), "course not found")
}

func TestEnrollStudentMissing(t *testing.T) {
	svc, _, courseRepo, _ := newEnrollmentFixture(t)
	courseID := seedCourse(t, courseRepo, 30)

	err := svc.Enroll(context.Background(), EnrollmentRequest{CourseID: courseID, StudentID: "ghost"})
	require.ErrorIs(t, err, common.ErrNotFound)
	assert.Contains(t, err.Error(), "student not found")
}

// The second enrollment for the same pair must fail with a conflict and
// leave exactly one record behind.
func TestEnrollDuplicatePair(t *testing.T) {
	svc, userRepo, courseRepo, enrollmentRepo := newEnrollmentFixture(t)
	seedStudent(t, userRepo, "student-1")
	courseID := seedCourse(t, courseRepo, 30)

	req := EnrollmentRequest{CourseID: courseID, StudentID: "student-1"}
	require.NoError(t, svc.Enroll(context.Background(), req))

	err := svc.Enroll(context.Background(), req)
	require.ErrorIs(t, err, common.ErrConflict)
	assert.Len(t, enrollmentRepo.rows, 1)
}

// Capacity is recorded, not enforced: 31 students fit into a course
// with a stated capacity of 30.
func TestEnrollIgnoresCapacity(t *testing.T) {
	svc, userRepo, courseRepo, enrollmentRepo := newEnrollmentFixture(t)
	courseID := seedCourse(t, courseRepo, 30)

	for i := 0; i < 31; i++ {
		id := fmt.Sprintf("student-%d", i)
		seedStudent(t, userRepo, id)
		err := svc.Enroll(context.Background(), EnrollmentRequest{CourseID: courseID, StudentID: id})
		require.NoError(t, err, "enrollment %d", i)
	}
	assert.Len(t, enrollmentRepo.rows, 31)
}

func TestUnenroll(t *testing.T) {
	svc, userRepo, courseRepo, enrollmentRepo := newEnrollmentFixture(t)
	seedStudent(t, userRepo, "student-1")
	courseID := seedCourse(t, courseRepo, 30)

	req := EnrollmentRequest{CourseID: courseID, StudentID: "student-1"}
	require.NoError(t, svc.Enroll(context.Background(), req))

	require.NoError(t, svc.Unenroll(context.Background(), req))
	assert.Empty(t, enrollmentRepo.rows)
}

func TestUnenrollMissing(t *testing.T) {
	svc, userRepo, courseRepo, _ := newEnrollmentFixture(t)
	seedStudent(t, userRepo, "student-1")
	courseID := seedCourse(t, courseRepo, 30)

	err := svc.Unenroll(context.Background(), EnrollmentRequest{CourseID: courseID, StudentID: "student-1"})
	require.ErrorIs(t, err, common.ErrNotFound)
	assert.Contains(t, err.Error(), "enrollment not found")
}

func TestEnrollValidatesRequest(t *testing.T) {
	svc, _, _, _ := newEnrollmentFixture(t)

	assert.ErrorIs(t, svc.Enroll(context.Background(), EnrollmentRequest{CourseID: 0, StudentID: "s"}), common.ErrBadRequest)
	assert.ErrorIs(t, svc.Enroll(context.Background(), EnrollmentRequest{CourseID: 1, StudentID: ""}), common.ErrBadRequest)
}

func TestStudentsByCourse(t *testing.T) {
	svc, userRepo, courseRepo, _ := newEnrollmentFixture(t)
	courseID := seedCourse(t, courseRepo, 30)
	seedStudent(t, userRepo, "student-1")
	seedStudent(t, userRepo, "student-2")

	require.NoError(t, svc.Enroll(context.Background(), EnrollmentRequest{CourseID: courseID, StudentID: "student-1"}))
	require.NoError(t, svc.Enroll(context.Background(), EnrollmentRequest{CourseID: courseID, StudentID: "student-2"}))

	students, err := svc.StudentsByCourse(context.Background(), courseID)
	require.NoError(t, err)
	assert.Len(t, students, 2)
}
