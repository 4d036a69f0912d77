package repository

// FiltersToQuery translates filters into a store predicate.
//
// Rules apply in a fixed order and later writes to the same field win, so the
// deprecated singular uuid and category filters override their plural forms.
// Empty strings count as absent; an empty, non-nil list is kept and matches nothing.
func FiltersToQuery(filters Filters) Predicate {
	predicate := Predicate{}

	if filters.UUIDs != nil {
		predicate[FieldUUID] = Condition{Op: OpIn, Value: filters.UUIDs}
	}
	if filters.Categories != nil {
		predicate[FieldCategory] = Condition{Op: OpIn, Value: filters.Categories}
	}
	setEq(predicate, FieldName, filters.Name)
	setEq(predicate, FieldCustodian, filters.Custodian)
	setEq(predicate, FieldType, filters.Type)
	setEq(predicate, FieldCategory, filters.Category)
	if filters.Onboardable != nil {
		predicate[FieldOnboardable] = Condition{Op: OpEq, Value: *filters.Onboardable}
	}
	setEq(predicate, FieldUUID, filters.UUID)

	return predicate
}

func setEq(predicate Predicate, field string, value *string) {
	if value == nil || *value == "" {
		return
	}
	predicate[field] = Condition{Op: OpEq, Value: *value}
}
