package repository

import (
	"reflect"
	"testing"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestFiltersToQueryEmpty(t *testing.T) {
	predicate := FiltersToQuery(Filters{})
	if len(predicate) != 0 {
		t.Fatalf("expected empty predicate, got %#v", predicate)
	}
}

func TestFiltersToQueryUUIDsMembership(t *testing.T) {
	uuids := []string{"a", "b"}
	predicate := FiltersToQuery(Filters{UUIDs: uuids})

	cond, ok := predicate[FieldUUID]
	if !ok || cond.Op != OpIn {
		t.Fatalf("expected uuid IN condition, got %#v", predicate)
	}
	if !reflect.DeepEqual(cond.Value, uuids) {
		t.Fatalf("expected %v, got %v", uuids, cond.Value)
	}
}

func TestFiltersToQueryDeprecatedUUIDOverridesUUIDs(t *testing.T) {
	predicate := FiltersToQuery(Filters{UUIDs: []string{"a", "b"}, UUID: strPtr("c")})

	cond := predicate[FieldUUID]
	if cond.Op != OpEq || cond.Value != "c" {
		t.Fatalf("expected uuid = c, got %#v", cond)
	}
}

func TestFiltersToQueryDeprecatedCategoryOverridesCategories(t *testing.T) {
	predicate := FiltersToQuery(Filters{
		Categories: []string{"pee", "percol"},
		Category:   strPtr("bonus"),
	})

	cond := predicate[FieldCategory]
	if cond.Op != OpEq || cond.Value != "bonus" {
		t.Fatalf("expected category = bonus, got %#v", cond)
	}
}

func TestFiltersToQueryScalarFields(t *testing.T) {
	predicate := FiltersToQuery(Filters{
		Name:      strPtr("PEE Groupe"),
		Custodian: strPtr("s2e"),
		Type:      strPtr("pei"),
	})

	want := Predicate{
		FieldName:      {Op: OpEq, Value: "PEE Groupe"},
		FieldCustodian: {Op: OpEq, Value: "s2e"},
		FieldType:      {Op: OpEq, Value: "pei"},
	}
	if !reflect.DeepEqual(predicate, want) {
		t.Fatalf("expected %#v, got %#v", want, predicate)
	}
}

func TestFiltersToQueryOnboardableTriState(t *testing.T) {
	if _, ok := FiltersToQuery(Filters{})[FieldOnboardable]; ok {
		t.Fatal("absent onboardable must not produce a condition")
	}

	cond, ok := FiltersToQuery(Filters{Onboardable: boolPtr(false)})[FieldOnboardable]
	if !ok || cond.Value != false {
		t.Fatalf("explicit false must filter non-onboardable products, got %#v", cond)
	}

	cond = FiltersToQuery(Filters{Onboardable: boolPtr(true)})[FieldOnboardable]
	if cond.Value != true {
		t.Fatalf("expected onboardable = true, got %#v", cond)
	}
}

func TestFiltersToQueryEmptyStringsAreAbsent(t *testing.T) {
	predicate := FiltersToQuery(Filters{Name: strPtr(""), UUID: strPtr(""), Category: strPtr("")})
	if len(predicate) != 0 {
		t.Fatalf("expected empty predicate, got %#v", predicate)
	}
}

func TestFiltersToQueryEmptyListMatchesNothing(t *testing.T) {
	cond, ok := FiltersToQuery(Filters{UUIDs: []string{}})[FieldUUID]
	if !ok || cond.Op != OpIn {
		t.Fatalf("expected uuid IN [] condition, got %#v", cond)
	}
	if values := cond.Value.([]string); len(values) != 0 {
		t.Fatalf("expected empty list, got %v", values)
	}
}

func TestPredicateFieldsSorted(t *testing.T) {
	predicate := FiltersToQuery(Filters{Type: strPtr("pee"), Name: strPtr("x"), UUIDs: []string{"a"}})
	want := []string{FieldName, FieldType, FieldUUID}
	if got := predicate.Fields(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
