package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		input string
		want  Role
	}{
		{"student", RoleStudent},
		{"Student", RoleStudent},
		{"  STUDENT ", RoleStudent},
		{"instructor", RoleInstructor},
		{"Instructor", RoleInstructor},
		{"INSTRUCTOR", RoleInstructor},
		{"professor", RoleInstructor},
		{"Professor", RoleInstructor},
		{"proffessor", RoleInstructor}, // misspelling present in stored rows
		{"", RoleUnknown},
		{"admin", RoleUnknown},
		{"teacher", RoleUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRole(tt.input))
		})
	}
}

func TestRoleIsInstructor(t *testing.T) {
	assert.True(t, RoleInstructor.IsInstructor())
	assert.False(t, RoleStudent.IsInstructor())
	assert.False(t, RoleUnknown.IsInstructor())

	// Raw strings never satisfy the check without canonicalization.
	assert.False(t, Role("Professor").IsInstructor())
	assert.True(t, ParseRole("Professor").IsInstructor())
}
