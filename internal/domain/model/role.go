package model

import "strings"

// Role is the closed set of account roles. Stored role strings are free
// text historically ("student", "instructor", "professor", odd casings),
// so every comparison must go through ParseRole rather than matching
// literals.
type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
	RoleUnknown    Role = "unknown"
)

// ParseRole is the single canonicalization point for role strings.
// "professor" is a legacy synonym for instructor and some stored rows
// carry the misspelled "proffessor".
func ParseRole(s string) Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "student":
		return RoleStudent
	case "instructor", "professor", "proffessor":
		return RoleInstructor
	default:
		return RoleUnknown
	}
}

func (r Role) IsInstructor() bool {
	return r == RoleInstructor
}

func (r Role) String() string {
	return string(r)
}
