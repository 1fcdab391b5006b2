package seed

import (
	"github.com/dailysync/sdk/modules/catalog/domain/entities/kpitemplate"
	"github.com/dailysync/sdk/modules/catalog/domain/entities/rolearchetype"
	"github.com/dailysync/sdk/pkg/document"
)

type KPIDefinition struct {
	Code      string
	Name      string
	Unit      string
	Direction kpitemplate.Direction
	Frequency kpitemplate.Frequency
}

type RoleDefinition struct {
	Code        string
	Name        string
	Level       rolearchetype.Level
	Description string
	KPIs        []KPIDefinition
}

type DepartmentDefinition struct {
	Code        string
	Name        string
	Description string
	Roles       []RoleDefinition
}

// baseReportTemplate is the default daily report shape attached to every
// built-in role archetype. KPI rows render in the archetype-declared order.
func baseReportTemplate() document.Document {
	return document.Document{
		"version": 1,
		"sections": []any{
			map[string]any{"key": "yesterday", "title": "Yesterday", "kind": "text"},
			map[string]any{"key": "today", "title": "Today", "kind": "text"},
			map[string]any{"key": "blockers", "title": "Blockers", "kind": "text"},
			map[string]any{"key": "kpis", "title": "KPIs", "kind": "kpi_table"},
		},
	}
}

var (
	kpiLeadsCreated   = KPIDefinition{Code: "LEADS_CREATED_DAILY", Name: "New leads per day", Unit: "count", Direction: kpitemplate.HigherBetter, Frequency: kpitemplate.Daily}
	kpiCallsMade      = KPIDefinition{Code: "CALLS_MADE", Name: "Calls made", Unit: "count", Direction: kpitemplate.HigherBetter, Frequency: kpitemplate.Daily}
	kpiMeetingsBooked = KPIDefinition{Code: "MEETINGS_BOOKED", Name: "Meetings booked", Unit: "count", Direction: kpitemplate.HigherBetter, Frequency: kpitemplate.Daily}
	kpiLeadToMeeting  = KPIDefinition{Code: "LEAD_TO_MEETING_RATE", Name: "Lead to meeting rate", Unit: "%", Direction: kpitemplate.HigherBetter, Frequency: kpitemplate.Weekly}
	kpiQualifiedOpps  = KPIDefinition{Code: "QUALIFIED_OPPS", Name: "Qualified opportunities", Unit: "count", Direction: kpitemplate.HigherBetter, Frequency: kpitemplate.Daily}
	kpiWinRate        = KPIDefinition{Code: "WIN_RATE", Name: "Win rate", Unit: "%", Direction: kpitemplate.HigherBetter, Frequency: kpitemplate.Monthly}
	kpiRevenueClosed  = KPIDefinition{Code: "REVENUE_CLOSED", Name: "Closed revenue", Unit: "USD", Direction: kpitemplate.HigherBetter, Frequency: kpitemplate.Monthly}
	kpiPipelineCov    = KPIDefinition{Code: "PIPELINE_COVERAGE", Name: "Pipeline coverage", Unit: "x", Direction: kpitemplate.TargetValue, Frequency: kpitemplate.Weekly}

	kpiTasksShipped   = KPIDefinition{Code: "TASKS_SHIPPED", Name: "Tasks shipped", Unit: "count", Direction: kpitemplate.HigherBetter, Frequency: kpitemplate.Daily}
	kpiBugsOpen       = KPIDefinition{Code: "BUGS_OPEN", Name: "Open bugs", Unit: "count", Direction: kpitemplate.LowerBetter, Frequency: kpitemplate.Weekly}
	kpiCycleTime      = KPIDefinition{Code: "CYCLE_TIME", Name: "Cycle time", Unit: "days", Direction: kpitemplate.LowerBetter, Frequency: kpitemplate.Weekly}
	kpiUptime         = KPIDefinition{Code: "UPTIME", Name: "Service uptime", Unit: "%", Direction: kpitemplate.TargetValue, Frequency: kpitemplate.Monthly}
	kpiReleaseCadence = KPIDefinition{Code: "RELEASE_CADENCE", Name: "Releases per month", Unit: "count", Direction: kpitemplate.HigherBetter, Frequency: kpitemplate.Monthly}

	kpiContentPieces = KPIDefinition{Code: "CONTENT_PIECES", Name: "Content pieces published", Unit: "count", Direction: kpitemplate.HigherBetter, Frequency: kpitemplate.Weekly}
	kpiMQLs          = KPIDefinition{Code: "MQLS", Name: "Marketing qualified leads", Unit: "count", Direction: kpitemplate.HigherBetter, Frequency: kpitemplate.Weekly}
	kpiCAC           = KPIDefinition{Code: "CAC", Name: "Customer acquisition cost", Unit: "USD", Direction: kpitemplate.LowerBetter, Frequency: kpitemplate.Monthly}

	kpiTicketsResolved = KPIDefinition{Code: "TICKETS_RESOLVED", Name: "Tickets resolved", Unit: "count", Direction: kpitemplate.HigherBetter, Frequency: kpitemplate.Daily}
	kpiFirstResponse   = KPIDefinition{Code: "FIRST_RESPONSE_TIME", Name: "First response time", Unit: "hours", Direction: kpitemplate.LowerBetter, Frequency: kpitemplate.Daily}
	kpiCSAT            = KPIDefinition{Code: "CSAT", Name: "Customer satisfaction", Unit: "%", Direction: kpitemplate.HigherBetter, Frequency: kpitemplate.Monthly}
	kpiChurnRate       = KPIDefinition{Code: "CHURN_RATE", Name: "Churn rate", Unit: "%", Direction: kpitemplate.LowerBetter, Frequency: kpitemplate.Monthly}

	kpiInvoicesOnTime = KPIDefinition{Code: "INVOICES_ON_TIME", Name: "Invoices processed on time", Unit: "%", Direction: kpitemplate.HigherBetter, Frequency: kpitemplate.Weekly}
	kpiTimeToHire     = KPIDefinition{Code: "TIME_TO_HIRE", Name: "Time to hire", Unit: "days", Direction: kpitemplate.LowerBetter, Frequency: kpitemplate.Monthly}
	kpiBurnRate       = KPIDefinition{Code: "BURN_RATE", Name: "Burn rate", Unit: "USD", Direction: kpitemplate.TargetValue, Frequency: kpitemplate.Monthly}
)

// BuiltInDepartments is the global catalog shipped with the product. Seeding
// upserts by code, so edits here roll out on the next seed run without
// duplicating rows.
func BuiltInDepartments() []DepartmentDefinition {
	return []DepartmentDefinition{
		{
			Code:        "SALES",
			Name:        "Sales",
			Description: "Revenue generation, customer acquisition, and account management",
			Roles: []RoleDefinition{
				{
					Code: "SALES_SDR", Name: "SDR / Lead Generator", Level: rolearchetype.LevelIC,
					Description: "Outbound prospecting, cold calling, and lead qualification",
					KPIs:        []KPIDefinition{kpiLeadsCreated, kpiCallsMade, kpiMeetingsBooked, kpiLeadToMeeting},
				},
				{
					Code: "SALES_AE", Name: "Account Executive", Level: rolearchetype.LevelIC,
					Description: "Closing deals, demos, and managing sales pipeline",
					KPIs:        []KPIDefinition{kpiQualifiedOpps, kpiWinRate, kpiRevenueClosed},
				},
				{
					Code: "SALES_LEAD", Name: "Sales Team Lead", Level: rolearchetype.LevelTeamLead,
					Description: "Coaching the sales team and owning the pipeline",
					KPIs:        []KPIDefinition{kpiRevenueClosed, kpiWinRate, kpiPipelineCov},
				},
				{
					Code: "SALES_CRO", Name: "Chief Revenue Officer", Level: rolearchetype.LevelCLevel,
					Description: "Revenue strategy across sales, marketing, and success",
					KPIs:        []KPIDefinition{kpiRevenueClosed, kpiPipelineCov, kpiChurnRate},
				},
			},
		},
		{
			Code:        "PRODENG",
			Name:        "Product & Engineering",
			Description: "Product development, engineering, and technical operations",
			Roles: []RoleDefinition{
				{
					Code: "ENG_DEV", Name: "Software Engineer", Level: rolearchetype.LevelIC,
					Description: "Designing, building, and shipping product features",
					KPIs:        []KPIDefinition{kpiTasksShipped, kpiBugsOpen, kpiCycleTime},
				},
				{
					Code: "ENG_QA", Name: "QA Engineer", Level: rolearchetype.LevelIC,
					Description: "Test coverage, regression prevention, and release quality",
					KPIs:        []KPIDefinition{kpiBugsOpen, kpiCycleTime},
				},
				{
					Code: "ENG_LEAD", Name: "Engineering Team Lead", Level: rolearchetype.LevelTeamLead,
					Description: "Delivery planning and engineering team health",
					KPIs:        []KPIDefinition{kpiCycleTime, kpiReleaseCadence, kpiUptime},
				},
				{
					Code: "ENG_CTO", Name: "Chief Technology Officer", Level: rolearchetype.LevelCLevel,
					Description: "Technical strategy, architecture, and platform reliability",
					KPIs:        []KPIDefinition{kpiUptime, kpiReleaseCadence},
				},
			},
		},
		{
			Code:        "MKT",
			Name:        "Marketing",
			Description: "Brand, demand generation, content, and growth",
			Roles: []RoleDefinition{
				{
					Code: "MKT_CONTENT", Name: "Content Marketer", Level: rolearchetype.LevelIC,
					Description: "Content production and distribution",
					KPIs:        []KPIDefinition{kpiContentPieces, kpiMQLs},
				},
				{
					Code: "MKT_HEAD", Name: "Head of Marketing", Level: rolearchetype.LevelHead,
					Description: "Demand generation strategy and marketing budget",
					KPIs:        []KPIDefinition{kpiMQLs, kpiCAC},
				},
			},
		},
		{
			Code:        "CS",
			Name:        "Customer Success",
			Description: "Customer onboarding, support, and retention",
			Roles: []RoleDefinition{
				{
					Code: "CS_SUPPORT", Name: "Support Specialist", Level: rolearchetype.LevelIC,
					Description: "Frontline support and ticket resolution",
					KPIs:        []KPIDefinition{kpiTicketsResolved, kpiFirstResponse, kpiCSAT},
				},
				{
					Code: "CS_HEAD", Name: "Head of Customer Success", Level: rolearchetype.LevelHead,
					Description: "Retention strategy and customer health",
					KPIs:        []KPIDefinition{kpiCSAT, kpiChurnRate},
				},
			},
		},
		{
			Code:        "OPS",
			Name:        "Operations",
			Description: "Finance, HR, legal, and administrative functions",
			Roles: []RoleDefinition{
				{
					Code: "OPS_FINANCE", Name: "Finance Specialist", Level: rolearchetype.LevelIC,
					Description: "Invoicing, payroll, and financial reporting",
					KPIs:        []KPIDefinition{kpiInvoicesOnTime, kpiBurnRate},
				},
				{
					Code: "OPS_HR", Name: "HR Specialist", Level: rolearchetype.LevelIC,
					Description: "Hiring pipeline and employee operations",
					KPIs:        []KPIDefinition{kpiTimeToHire},
				},
				{
					Code: "OPS_COO", Name: "Chief Operating Officer", Level: rolearchetype.LevelCLevel,
					Description: "Operational efficiency across the company",
					KPIs:        []KPIDefinition{kpiBurnRate, kpiInvoicesOnTime, kpiTimeToHire},
				},
			},
		},
	}
}
