package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tutorku_backend/internals/constants"
	directoryModel "tutorku_backend/internals/features/directory/students/model"
)

func asg(role, status string) *directoryModel.TeacherAssignmentModel {
	return &directoryModel.TeacherAssignmentModel{
		TeacherAssignmentRole:   role,
		TeacherAssignmentStatus: status,
	}
}

var fullCaps = CapabilitySet{
	CanAddTasks:     true,
	CanEditTasks:    true,
	CanDeleteTasks:  true,
	CanReorderTasks: true,
	CanAddComments:  true,
	CanEditComments: true,
	CanPublish:      true,
}

func TestCapabilities(t *testing.T) {
	cases := []struct {
		name string
		role string
		asg  *directoryModel.TeacherAssignmentModel
		want CapabilitySet
	}{
		{
			name: "admin gets everything without an assignment",
			role: constants.RoleAdmin,
			want: fullCaps,
		},
		{
			name: "active mentor gets everything",
			role: constants.RoleTeacher,
			asg:  asg(constants.AssignmentRoleMentor, constants.AssignmentStatusActive),
			want: fullCaps,
		},
		{
			name: "active instructor may only comment",
			role: constants.RoleTeacher,
			asg:  asg(constants.AssignmentRoleInstructor, constants.AssignmentStatusActive),
			want: CapabilitySet{CanAddComments: true, CanEditComments: true},
		},
		{
			name: "teacher without assignment gets nothing",
			role: constants.RoleTeacher,
			want: CapabilitySet{},
		},
		{
			name: "ended mentor assignment grants nothing",
			role: constants.RoleTeacher,
			asg:  asg(constants.AssignmentRoleMentor, constants.AssignmentStatusEnded),
			want: CapabilitySet{},
		},
		{
			name: "ended instructor assignment grants nothing",
			role: constants.RoleTeacher,
			asg:  asg(constants.AssignmentRoleInstructor, constants.AssignmentStatusEnded),
			want: CapabilitySet{},
		},
		{
			name: "unknown assignment role grants nothing",
			role: constants.RoleTeacher,
			asg:  asg("observer", constants.AssignmentStatusActive),
			want: CapabilitySet{},
		},
		{
			name: "student may only self-check",
			role: constants.RoleStudent,
			want: CapabilitySet{CanToggleOwnTask: true},
		},
		{
			name: "parent may only self-check",
			role: constants.RoleParent,
			want: CapabilitySet{CanToggleOwnTask: true},
		},
		{
			name: "unknown role gets nothing",
			role: "auditor",
			want: CapabilitySet{},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Capabilities(tc.role, tc.asg))
		})
	}
}
