package service

import (
	"context"
	"testing"
	"time"

	"studybuddy/internal/common"
	"studybuddy/internal/common/security"
	"studybuddy/internal/domain/model"
	"studybuddy/internal/platform/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestJWT() {
	config.AppConfig = &config.Config{
		JWTKey:      []byte("test-secret"),
		JWTIssuer:   "studybuddy-api",
		JWTAudience: "studybuddy-web",
		JWTExp:      time.Hour,
	}
	security.InitJWT()
}

func TestRegister(t *testing.T) {
	setupTestJWT()
	userRepo := newFakeUserRepo()
	svc := NewAuthService(userRepo)

	user, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "ada@example.com",
		FullName: "Ada Lovelace",
		Password: "s3cret",
		Role:     "Professor",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, model.RoleInstructor, user.Role, "professor canonicalizes to instructor")
	assert.Empty(t, user.HashedPassword, "hash must not leave the service")

	stored := userRepo.users[user.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "s3cret", stored.HashedPassword, "password must be stored hashed")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	setupTestJWT()
	userRepo := newFakeUserRepo()
	svc := NewAuthService(userRepo)

	req := RegisterRequest{Email: "ada@example.com", FullName: "Ada", Password: "pw", Role: "student"}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, common.ErrConflict)
}

func TestRegisterMissingFields(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), RegisterRequest{Email: "a@b.c", Password: "pw"})
	assert.ErrorIs(t, err, common.ErrBadRequest)
}

func TestLoginSuccess(t *testing.T) {
	setupTestJWT()
	userRepo := newFakeUserRepo()
	svc := NewAuthService(userRepo)

	user, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "ada@example.com",
		FullName: "Ada Lovelace",
		Password: "s3cret",
		Role:     "student",
	})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), LoginRequest{Email: "ada@example.com", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, resp.UserID)
	assert.NotEmpty(t, resp.Token)
}

// A missing account and a wrong password must be indistinguishable to
// the caller.
func TestLoginFailuresAreUniform(t *testing.T) {
	setupTestJWT()
	userRepo := newFakeUserRepo()
	svc := NewAuthService(userRepo)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "ada@example.com",
		FullName: "Ada Lovelace",
		Password: "s3cret",
		Role:     "student",
	})
	require.NoError(t, err)

	_, errMissing := svc.Login(context.Background(), LoginRequest{Email: "nobody@example.com", Password: "s3cret"})
	_, errWrongPw := svc.Login(context.Background(), LoginRequest{Email: "ada@example.com", Password: "wrong"})

	require.ErrorIs(t, errMissing, common.ErrUnauthorized)
	require.ErrorIs(t, errWrongPw, common.ErrUnauthorized)
	assert.Equal(t, errMissing.Error(), errWrongPw.Error())
}
