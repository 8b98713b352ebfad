package service

import "errors"

// Application error taxonomy for the weekly-plan engine. Controllers map
// these to HTTP statuses; none of them is ever retried. An absent plan for
// a (student, week) lookup is NOT in this list on purpose: GetPlan returns
// (nil, nil) because "not yet created" is a normal week view.
var (
	ErrPlanAlreadyExists = errors.New("a plan already exists for this student and week")
	ErrPlanNotFound      = errors.New("plan not found")
	ErrTaskNotFound      = errors.New("task not found")
	ErrCommentNotFound   = errors.New("comment not found")

	ErrEmptyContent         = errors.New("content must not be empty")
	ErrOutOfWeekRange       = errors.New("target date is outside the plan's week")
	ErrIncompleteReorderSet = errors.New("reorder payload must contain exactly the tasks of that day")
	ErrStaleReorder         = errors.New("task ordering changed since it was read, reload and retry")
	ErrInvalidPlanStatus    = errors.New("plan status must be draft or published")

	ErrPermissionDenied = errors.New("permission denied")
)
