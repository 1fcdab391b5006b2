package models

type DepartmentArchetype struct {
	ID          string
	Code        string
	Name        string
	Description string
}

type RoleArchetype struct {
	ID                      string
	Code                    string
	Name                    string
	Level                   string
	DepartmentArchetypeID   string
	DepartmentArchetypeCode string
	Description             string
	ReportTemplate          []byte
}

type KPITemplate struct {
	ID        string
	Code      string
	Name      string
	Unit      string
	Direction string
	Frequency string
}
