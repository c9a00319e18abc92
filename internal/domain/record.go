package domain

// Record is one row of a module table keyed by column name.
type Record map[string]any

// ID returns the record identifier, or 0 if absent.
func (r Record) ID() int64 {
	switch v := r[ColID].(type) {
	case int64:
		return v
	case int32:
		return int64(v)
	case int:
		return int64(v)
	}
	return 0
}

// IsDeleted reports the soft-delete flag of the record.
func (r Record) IsDeleted() bool {
	b, _ := r[ColIsDeleted].(bool)
	return b
}

// ListFilter contains the filtering parameters for module listings.
// Conditions combine with AND.
type ListFilter struct {
	// Deleted selects soft-deleted rows instead of live ones.
	Deleted bool
	// Q is matched case-insensitively as a substring of name or contact_person.
	Q       string
	Status  *string
	OwnerID *int64
}
