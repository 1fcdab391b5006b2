package user

import "github.com/dailysync/sdk/pkg/document"

type CreatedEvent struct {
	Result *User
}

type DepartmentAssignedEvent struct {
	Result *User
}

type TeamAssignedEvent struct {
	Result *User
}

type TeamClearedEvent struct {
	Result *User
}

type WorkScheduleUpdatedEvent struct {
	Result       *User
	WorkSchedule document.Document
}
