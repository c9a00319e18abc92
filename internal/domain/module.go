package domain

import "sort"

// Module names one of the entity collections served by the generic engine.
// The module name doubles as the table name.
type Module string

const (
	ModuleLeads         Module = "leads"
	ModuleCustomers     Module = "customers"
	ModuleOpportunities Module = "opportunities"
	ModuleContracts     Module = "contracts"
	ModuleActivities    Module = "activities"
)

// AllModules is the allow-list of module names accepted from requests.
var AllModules = []Module{
	ModuleLeads,
	ModuleCustomers,
	ModuleOpportunities,
	ModuleContracts,
	ModuleActivities,
}

func (m Module) String() string { return string(m) }

// Table returns the table identifier for the module.
func (m Module) Table() string { return string(m) }

func (m Module) IsValid() bool {
	_, ok := registry[m]
	return ok
}

// ParseModule resolves a request-supplied name against the allow-list.
func ParseModule(name string) (Module, error) {
	m := Module(name)
	if !m.IsValid() {
		return "", &InvalidModuleError{Name: name}
	}
	return m, nil
}

// ColumnKind is the scalar type of a module column.
type ColumnKind int

const (
	KindText ColumnKind = iota + 1
	KindInteger
	KindReal
	KindTimestamp
	KindDate
	KindBool
)

func (k ColumnKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInteger:
		return "integer"
	case KindReal:
		return "real"
	case KindTimestamp:
		return "timestamp"
	case KindDate:
		return "date"
	case KindBool:
		return "boolean"
	}
	return "unknown"
}

// Column describes one column of a module table.
type Column struct {
	Name     string
	Kind     ColumnKind
	ReadOnly bool // managed by the engine, never accepted from payloads
	Required bool // must be present and non-empty on create
	NotNull  bool
}

// Column names shared by every module table.
const (
	ColID            = "id"
	ColName          = "name"
	ColContactPerson = "contact_person"
	ColOwnerID       = "owner_id"
	ColStatus        = "status"
	ColRemark        = "remark"
	ColCreatedAt     = "created_at"
	ColUpdatedAt     = "updated_at"
	ColIsDeleted     = "is_deleted"
	ColDeletedAt     = "deleted_at"
)

// SearchColumns are matched by the free-text list filter.
var SearchColumns = []string{ColName, ColContactPerson}

// Schema is the static column configuration of one module.
type Schema struct {
	Module        Module
	StatusDefault string
	Columns       []Column

	index map[string]int
}

// Column looks up a column by name.
func (s *Schema) Column(name string) (Column, bool) {
	i, ok := s.index[name]
	if !ok {
		return Column{}, false
	}
	return s.Columns[i], true
}

// ColumnNames returns every column name in table order.
func (s *Schema) ColumnNames() []string {
	names := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		names[i] = c.Name
	}
	return names
}

// WritableColumns returns the sorted names of columns a payload may set.
func (s *Schema) WritableColumns() []string {
	var names []string
	for _, c := range s.Columns {
		if !c.ReadOnly {
			names = append(names, c.Name)
		}
	}
	sort.Strings(names)
	return names
}

// SchemaOf returns the registered schema for a module, or nil if the module
// is not on the allow-list.
func SchemaOf(m Module) *Schema {
	return registry[m]
}

var registry = map[Module]*Schema{
	ModuleLeads: newSchema(ModuleLeads, "未跟进",
		Column{Name: "phone", Kind: KindText},
		Column{Name: "email", Kind: KindText},
		Column{Name: "company", Kind: KindText},
		Column{Name: "source", Kind: KindText},
		Column{Name: "industry", Kind: KindText},
		Column{Name: "address", Kind: KindText},
	),
	ModuleCustomers: newSchema(ModuleCustomers, "潜在客户",
		Column{Name: "phone", Kind: KindText},
		Column{Name: "email", Kind: KindText},
		Column{Name: "industry", Kind: KindText},
		Column{Name: "level", Kind: KindText},
		Column{Name: "source", Kind: KindText},
		Column{Name: "address", Kind: KindText},
		Column{Name: "lead_id", Kind: KindInteger},
	),
	ModuleOpportunities: newSchema(ModuleOpportunities, "进行中",
		Column{Name: "customer_id", Kind: KindInteger},
		Column{Name: "amount", Kind: KindReal},
		Column{Name: "stage", Kind: KindText, NotNull: true},
		Column{Name: "probability", Kind: KindInteger},
		Column{Name: "expected_close_date", Kind: KindDate},
	),
	ModuleContracts: newSchema(ModuleContracts, "待审批",
		Column{Name: "contract_no", Kind: KindText},
		Column{Name: "customer_id", Kind: KindInteger},
		Column{Name: "opportunity_id", Kind: KindInteger},
		Column{Name: "amount", Kind: KindReal},
		Column{Name: "sign_date", Kind: KindDate},
		Column{Name: "start_date", Kind: KindDate},
		Column{Name: "end_date", Kind: KindDate},
	),
	ModuleActivities: newSchema(ModuleActivities, "未开始",
		Column{Name: "activity_type", Kind: KindText},
		Column{Name: "related_type", Kind: KindText},
		Column{Name: "related_id", Kind: KindInteger},
		Column{Name: "activity_time", Kind: KindTimestamp},
		Column{Name: "location", Kind: KindText},
		Column{Name: "content", Kind: KindText},
	),
}

// newSchema wraps the module-specific columns with the columns every module
// table carries.
func newSchema(m Module, statusDefault string, extra ...Column) *Schema {
	cols := []Column{
		{Name: ColID, Kind: KindInteger, ReadOnly: true, NotNull: true},
		{Name: ColName, Kind: KindText, Required: true, NotNull: true},
		{Name: ColContactPerson, Kind: KindText},
		{Name: ColOwnerID, Kind: KindInteger},
		{Name: ColStatus, Kind: KindText, NotNull: true},
	}
	cols = append(cols, extra...)
	cols = append(cols,
		Column{Name: ColRemark, Kind: KindText},
		Column{Name: ColCreatedAt, Kind: KindTimestamp, ReadOnly: true, NotNull: true},
		Column{Name: ColUpdatedAt, Kind: KindTimestamp, ReadOnly: true, NotNull: true},
		Column{Name: ColIsDeleted, Kind: KindBool, ReadOnly: true, NotNull: true},
		Column{Name: ColDeletedAt, Kind: KindTimestamp, ReadOnly: true},
	)

	s := &Schema{
		Module:        m,
		StatusDefault: statusDefault,
		Columns:       cols,
		index:         make(map[string]int, len(cols)),
	}
	for i, c := range cols {
		s.index[c.Name] = i
	}
	return s
}
