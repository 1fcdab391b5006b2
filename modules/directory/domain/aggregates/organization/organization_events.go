package organization

import "github.com/dailysync/sdk/pkg/document"

type CreatedEvent struct {
	Result *Organization
}

type UpdatedEvent struct {
	Result *Organization
}

type SettingsUpdatedEvent struct {
	Result   *Organization
	Settings document.Document
}

type AIPolicyUpdatedEvent struct {
	Result   *Organization
	AIPolicy document.Document
}
