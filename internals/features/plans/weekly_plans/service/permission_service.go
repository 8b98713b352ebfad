package service

import (
	"tutorku_backend/internals/constants"
	directoryModel "tutorku_backend/internals/features/directory/students/model"
)

// CapabilitySet is the permission vector computed for an actor on one
// student's plan. Every mutating endpoint consults it before touching the
// store. CanEditComments means "own comments"; the admin may edit any
// comment, which the store enforces separately via the author check.
type CapabilitySet struct {
	CanAddTasks     bool `json:"can_add_tasks"`
	CanEditTasks    bool `json:"can_edit_tasks"`
	CanDeleteTasks  bool `json:"can_delete_tasks"`
	CanReorderTasks bool `json:"can_reorder_tasks"`
	CanAddComments  bool `json:"can_add_comments"`
	CanEditComments bool `json:"can_edit_comments"`
	CanPublish      bool `json:"can_publish"`

	// CanToggleOwnTask is the narrow student/parent self-check capability,
	// orthogonal to the teacher/admin matrix above. "Own" (the plan belongs
	// to this viewer's student) is checked at the call site.
	CanToggleOwnTask bool `json:"can_toggle_own_task"`
}

// Capabilities maps (role, assignment) to the capability set. asg is the
// teacher's assignment to the plan's student; nil when there is no active
// one. The switch is exhaustive over the closed role set in constants.
func Capabilities(role string, asg *directoryModel.TeacherAssignmentModel) CapabilitySet {
	switch role {
	case constants.RoleAdmin:
		return CapabilitySet{
			CanAddTasks:     true,
			CanEditTasks:    true,
			CanDeleteTasks:  true,
			CanReorderTasks: true,
			CanAddComments:  true,
			CanEditComments: true,
			CanPublish:      true,
		}

	case constants.RoleTeacher:
		if asg == nil || asg.TeacherAssignmentStatus != constants.AssignmentStatusActive {
			return CapabilitySet{}
		}
		switch asg.TeacherAssignmentRole {
		case constants.AssignmentRoleMentor:
			return CapabilitySet{
				CanAddTasks:     true,
				CanEditTasks:    true,
				CanDeleteTasks:  true,
				CanReorderTasks: true,
				CanAddComments:  true,
				CanEditComments: true,
				CanPublish:      true,
			}
		case constants.AssignmentRoleInstructor:
			return CapabilitySet{
				CanAddComments:  true,
				CanEditComments: true,
			}
		}
		return CapabilitySet{}

	case constants.RoleStudent, constants.RoleParent:
		return CapabilitySet{CanToggleOwnTask: true}
	}

	return CapabilitySet{}
}
