package user

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/dailysync/sdk/pkg/constants"
	"github.com/dailysync/sdk/pkg/serrors"
)

type CreateDTO struct {
	Email             string `validate:"required,email"`
	FullName          string `validate:"required"`
	DeptID            *uuid.UUID
	TeamID            *uuid.UUID
	RoleArchetypeCode *string
}

func (d *CreateDTO) Ok() (serrors.ValidationErrors, bool) {
	err := constants.Validate.Struct(d)
	if err == nil {
		return nil, true
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return serrors.ValidationErrors{"": serrors.NewValidation(err.Error())}, false
	}
	return serrors.FromValidator(fieldErrs), false
}

func (d *CreateDTO) ToEntity(orgID uuid.UUID) *User {
	return New(
		orgID,
		d.Email,
		d.FullName,
		WithDeptID(d.DeptID),
		WithTeamID(d.TeamID),
		WithRoleArchetypeCode(d.RoleArchetypeCode),
	)
}
