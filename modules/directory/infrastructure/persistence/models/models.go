package models

import (
	"database/sql"
	"time"
)

type Organization struct {
	ID          string
	Name        string
	Slug        string
	Plan        string
	Timezone    string
	Status      string
	MaxUsers    int
	MaxProjects int
	Settings    []byte
	AIPolicy    []byte
	Version     int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Department struct {
	ID            string
	OrgID         string
	Name          string
	Description   string
	ArchetypeCode sql.NullString
	ManagerID     sql.NullString
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Team struct {
	ID          string
	OrgID       string
	DeptID      string
	Name        string
	Description string
	ManagerID   sql.NullString
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type User struct {
	ID                string
	OrgID             string
	Email             string
	FullName          string
	DeptID            sql.NullString
	TeamID            sql.NullString
	RoleArchetypeCode sql.NullString
	WorkSchedule      []byte
	Version           int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
