package persistence

import (
	"encoding/json"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/dailysync/sdk/modules/catalog/domain/entities/departmentarchetype"
	"github.com/dailysync/sdk/modules/catalog/domain/entities/kpitemplate"
	"github.com/dailysync/sdk/modules/catalog/domain/entities/rolearchetype"
	"github.com/dailysync/sdk/modules/catalog/infrastructure/persistence/models"
	"github.com/dailysync/sdk/pkg/document"
)

func toDomainDepartmentArchetype(m *models.DepartmentArchetype) (*departmentarchetype.DepartmentArchetype, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid department archetype id")
	}
	return departmentarchetype.New(
		m.Code,
		m.Name,
		departmentarchetype.WithID(id),
		departmentarchetype.WithDescription(m.Description),
	), nil
}

func toDomainRoleArchetype(m *models.RoleArchetype, kpiTemplateIDs []uuid.UUID) (*rolearchetype.RoleArchetype, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid role archetype id")
	}
	deptID, err := uuid.Parse(m.DepartmentArchetypeID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid department archetype id")
	}
	level, err := rolearchetype.ParseLevel(m.Level)
	if err != nil {
		return nil, err
	}

	opts := []rolearchetype.Option{
		rolearchetype.WithID(id),
		rolearchetype.WithDescription(m.Description),
		rolearchetype.WithDepartmentArchetypeCode(m.DepartmentArchetypeCode),
		rolearchetype.WithKPITemplateIDs(kpiTemplateIDs),
	}
	if len(m.ReportTemplate) > 0 {
		var template document.Document
		if err := json.Unmarshal(m.ReportTemplate, &template); err != nil {
			return nil, errors.Wrap(err, "invalid report template document")
		}
		opts = append(opts, rolearchetype.WithReportTemplate(template))
	}

	return rolearchetype.New(m.Code, m.Name, level, deptID, opts...), nil
}

func toDomainKPITemplate(m *models.KPITemplate) (*kpitemplate.KPITemplate, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid kpi template id")
	}
	direction, err := kpitemplate.ParseDirection(m.Direction)
	if err != nil {
		return nil, err
	}
	frequency, err := kpitemplate.ParseFrequency(m.Frequency)
	if err != nil {
		return nil, err
	}
	return kpitemplate.New(
		m.Code,
		m.Name,
		m.Unit,
		direction,
		frequency,
		kpitemplate.WithID(id),
	), nil
}
