package organization

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/dailysync/sdk/pkg/constants"
	"github.com/dailysync/sdk/pkg/serrors"
)

type CreateDTO struct {
	Name     string `validate:"required"`
	Slug     string `validate:"omitempty,lowercase"`
	Plan     string
	Timezone string
}

type UpdateDTO struct {
	Name     string `validate:"required"`
	Plan     string
	Timezone string
	MaxUsers int `validate:"omitempty,gt=0"`
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

func (d *UpdateDTO) Apply(org *Organization) {
	org.SetName(d.Name)
	if d.Plan != "" {
		org.SetPlan(d.Plan)
	}
	if d.Timezone != "" {
		org.SetTimezone(d.Timezone)
	}
	if d.MaxUsers > 0 {
		org.SetMaxUsers(d.MaxUsers)
	}
}
