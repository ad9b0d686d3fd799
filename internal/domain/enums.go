package domain

type TaskStatus string

const (
	StatusNotStarted TaskStatus = "Not Started"
	StatusInProgress TaskStatus = "In Progress"
	StatusCompleted  TaskStatus = "Completed"
	StatusOnHold     TaskStatus = "On Hold"
	StatusBlocked    TaskStatus = "Blocked"
)

// TaskStatuses lists every status in display order.
var TaskStatuses = []TaskStatus{
	StatusNotStarted, StatusInProgress, StatusCompleted, StatusOnHold, StatusBlocked,
}

func (s TaskStatus) Valid() bool {
	for _, v := range TaskStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

func (p Priority) Valid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

type RiskLevel string

const (
	RiskHigh   RiskLevel = "High"
	RiskMedium RiskLevel = "Medium"
	RiskLow    RiskLevel = "Low"
)

func (r RiskLevel) Valid() bool {
	return r == RiskHigh || r == RiskMedium || r == RiskLow
}

type ResourceType string

const (
	ResourceLabor     ResourceType = "labor"
	ResourceMaterial  ResourceType = "material"
	ResourceEquipment ResourceType = "equipment"
	ResourceCost      ResourceType = "cost"
)

// ValidResourceTypes is the canonical set of accepted resource type strings.
var ValidResourceTypes = map[ResourceType]bool{
	ResourceLabor: true, ResourceMaterial: true, ResourceEquipment: true, ResourceCost: true,
}

type CostUnit string

const (
	CostPerHour  CostUnit = "hour"
	CostPerDay   CostUnit = "day"
	CostPerWeek  CostUnit = "week"
	CostPerMonth CostUnit = "month"
	CostPerYear  CostUnit = "year"
)

// ValidCostUnits is the canonical set of accepted cost unit strings.
var ValidCostUnits = map[CostUnit]bool{
	CostPerHour: true, CostPerDay: true, CostPerWeek: true, CostPerMonth: true, CostPerYear: true,
}

type ConversationAction string

const (
	ActionCommand  ConversationAction = "command"
	ActionGenerate ConversationAction = "generate"
	ActionImport   ConversationAction = "import"
)
