package department

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/dailysync/sdk/pkg/constants"
	"github.com/dailysync/sdk/pkg/serrors"
)

type CreateDTO struct {
	Name          string `validate:"required"`
	Description   string
	ArchetypeCode *string
	ManagerID     *uuid.UUID
}

type UpdateDTO struct {
	Name        string `validate:"required"`
	Description string
	ManagerID   *uuid.UUID
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

func (d *CreateDTO) ToEntity(orgID uuid.UUID) *Department {
	return New(
		orgID,
		d.Name,
		WithDescription(d.Description),
		WithArchetypeCode(d.ArchetypeCode),
		WithManagerID(d.ManagerID),
	)
}

func (d *UpdateDTO) Ok() (serrors.ValidationErrors, bool) {
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

func (d *UpdateDTO) Apply(dept *Department) {
	dept.SetName(d.Name)
	dept.SetDescription(d.Description)
	dept.SetManagerID(d.ManagerID)
}
