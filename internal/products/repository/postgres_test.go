package repository

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestBuildWhereEmptyPredicate(t *testing.T) {
	clause, args, err := buildWhere(Predicate{})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if clause != "TRUE" || len(args) != 0 {
		t.Fatalf("expected TRUE without args, got %q %v", clause, args)
	}
}

func TestBuildWhereRendersConditionsInFieldOrder(t *testing.T) {
	predicate := FiltersToQuery(Filters{
		UUIDs:       []string{"a", "b"},
		Onboardable: boolPtr(false),
		Type:        strPtr("pei"),
	})

	clause, args, err := buildWhere(predicate)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	wantClause := "document @> $1::jsonb AND document @> $2::jsonb AND document->>'uuid' = ANY($3)"
	if clause != wantClause {
		t.Fatalf("expected %q, got %q", wantClause, clause)
	}
	wantArgs := []interface{}{`{"onboardable":false}`, `{"type":"pei"}`, []string{"a", "b"}}
	if !reflect.DeepEqual(args, wantArgs) {
		t.Fatalf("expected %#v, got %#v", wantArgs, args)
	}
}

func TestListQuerySortsNewestFirst(t *testing.T) {
	query := strings.ToLower(listProductsQuery)
	if !strings.Contains(query, "order by created_at desc") {
		t.Fatal("list query must order by created_at desc")
	}
	if !strings.Contains(query, "limit $%d offset $%d") {
		t.Fatal("list query must bind limit and offset")
	}
}

func TestDecodeDocumentUsesColumnTimestamp(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	raw := []byte(`{"uuid":"u1","name":"PERCOL","custodian":"sgss","type":"percol","category":"percol","onboardable":true,"requiredSeniority":3}`)

	base, err := decodeDocument(raw, createdAt)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if !base.CreatedAt.Equal(createdAt) {
		t.Fatalf("expected created_at from column, got %s", base.CreatedAt)
	}
	if base.Custodian != "sgss" || base.RequiredSeniority == nil || *base.RequiredSeniority != 3 {
		t.Fatalf("unexpected decoded product %+v", base)
	}
}

func TestDecodeDocumentNullCustodian(t *testing.T) {
	base, err := decodeDocument([]byte(`{"uuid":"u1","type":"pee","custodian":null}`), time.Now())
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if base.Custodian != "" {
		t.Fatalf("expected no custodian, got %q", base.Custodian)
	}
}
