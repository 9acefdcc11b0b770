// Package authz is the single authorization decision point for course and
// assignment mutations. The API tier performs the mutation, so the API
// tier asks; the front tier only mirrors the answer for navigation.
package authz

import (
	"fmt"

	"studybuddy/internal/common"
	"studybuddy/internal/domain/model"
)

type Action string

const (
	ActionCreateCourse     Action = "course:create"
	ActionUpdateCourse     Action = "course:update"
	ActionDeleteCourse     Action = "course:delete"
	ActionCreateAssignment Action = "assignment:create"
	ActionUpdateAssignment Action = "assignment:update"
	ActionDeleteAssignment Action = "assignment:delete"
)

// Subject is the acting user as seen by whichever tier holds it: the
// token's subject id plus the stored role projection.
type Subject struct {
	UserID string
	Role   model.Role
}

// Authorize returns nil when subject may perform action on a resource
// owned by ownerID. Creation actions pass ownerID == subject's own id.
// Policy: deny unless the role is instructor; mutations on an existing
// resource additionally require the subject to be the recorded owner.
func Authorize(subject Subject, action Action, ownerID string) error {
	if !subject.Role.IsInstructor() {
		return fmt.Errorf("role %q may not perform %s: %w", subject.Role, action, common.ErrForbidden)
	}

	switch action {
	case ActionCreateCourse, ActionCreateAssignment:
		return nil
	case ActionUpdateCourse, ActionDeleteCourse, ActionUpdateAssignment, ActionDeleteAssignment:
		if subject.UserID != ownerID {
			return fmt.Errorf("user %s is not the owner of the resource: %w", subject.UserID, common.ErrForbidden)
		}
		return nil
	default:
		return fmt.Errorf("unknown action %s: %w", action, common.ErrForbidden)
	}
}
