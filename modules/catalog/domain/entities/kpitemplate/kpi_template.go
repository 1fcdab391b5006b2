package kpitemplate

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dailysync/sdk/pkg/serrors"
)

var (
	ErrNotFound = serrors.NewNotFound("kpi template")
)

// Direction declares how a measured value relates to performance.
type Direction string

const (
	HigherBetter Direction = "HIGHER_BETTER"
	LowerBetter  Direction = "LOWER_BETTER"
	TargetValue  Direction = "TARGET_VALUE"
)

// ParseDirection validates a wire value. These three symbols are the entire
// vocabulary; anything else is rejected before it reaches persistence.
func ParseDirection(value string) (Direction, error) {
	switch Direction(value) {
	case HigherBetter, LowerBetter, TargetValue:
		return Direction(value), nil
	default:
		return "", serrors.NewValidation(fmt.Sprintf("unknown kpi direction %q", value))
	}
}

// Frequency declares how often a KPI is expected to be reported.
type Frequency string

const (
	Daily   Frequency = "DAILY"
	Weekly  Frequency = "WEEKLY"
	Monthly Frequency = "MONTHLY"
)

func ParseFrequency(value string) (Frequency, error) {
	switch Frequency(value) {
	case Daily, Weekly, Monthly:
		return Frequency(value), nil
	default:
		return "", serrors.NewValidation(fmt.Sprintf("unknown kpi frequency %q", value))
	}
}

// KPITemplate is a global, tenant-independent KPI definition shared across
// role archetypes. It is never organization-scoped.
type KPITemplate struct {
	id        uuid.UUID
	code      string
	name      string
	unit      string
	direction Direction
	frequency Frequency
}

type Option func(*KPITemplate)

func WithID(id uuid.UUID) Option {
	return func(k *KPITemplate) {
		k.id = id
	}
}

func New(code, name, unit string, direction Direction, frequency Frequency, opts ...Option) *KPITemplate {
	k := &KPITemplate{
		id:        uuid.New(),
		code:      code,
		name:      name,
		unit:      unit,
		direction: direction,
		frequency: frequency,
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

func (k *KPITemplate) ID() uuid.UUID {
	return k.id
}

func (k *KPITemplate) Code() string {
	return k.code
}

func (k *KPITemplate) Name() string {
	return k.name
}

func (k *KPITemplate) Unit() string {
	return k.unit
}

func (k *KPITemplate) Direction() Direction {
	return k.direction
}

func (k *KPITemplate) Frequency() Frequency {
	return k.frequency
}
