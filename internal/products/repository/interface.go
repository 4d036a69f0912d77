package repository

import (
	"context"
	"sort"
	"time"

	"product_catalog_backend/internal/products/domain"
)

// Stored field names shared by every store.
const (
	FieldUUID        = "uuid"
	FieldName        = "name"
	FieldCustodian   = "custodian"
	FieldType        = "type"
	FieldCategory    = "category"
	FieldOnboardable = "onboardable"
	FieldCreatedAt   = "createdAt"
)

// Filters is the sparse set of optional product predicates.
// A nil pointer or nil slice means the filter is absent.
type Filters struct {
	// Deprecated: use UUIDs.
	UUID        *string
	UUIDs       []string
	Name        *string
	Custodian   *string
	Type        *string
	// Deprecated: use Categories.
	Category    *string
	Categories  []string
	Onboardable *bool
}

// Operator is the comparison applied by a Condition.
type Operator int

const (
	// OpEq matches records whose field equals Value.
	OpEq Operator = iota
	// OpIn matches records whose field is one of Value ([]string).
	OpIn
)

// Condition is a single field comparison.
type Condition struct {
	Op    Operator
	Value any
}

// Predicate maps field names to conditions; all conditions must hold.
// An empty predicate matches every record.
type Predicate map[string]Condition

// Fields returns the predicate's field names in sorted order.
func (p Predicate) Fields() []string {
	fields := make([]string, 0, len(p))
	for field := range p {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// FindOptions bounds a product listing. Results are always sorted by
// creation time, newest first.
type FindOptions struct {
	Skip  int
	Limit int
}

// Document is the stored shape of a product record.
type Document struct {
	UUID              string    `bson:"uuid" json:"uuid"`
	Name              string    `bson:"name" json:"name"`
	Custodian         *string   `bson:"custodian" json:"custodian"`
	Type              string    `bson:"type" json:"type"`
	Category          string    `bson:"category" json:"category"`
	Onboardable       bool      `bson:"onboardable" json:"onboardable"`
	RequiredSeniority *int      `bson:"requiredSeniority,omitempty" json:"requiredSeniority,omitempty"`
	CreatedAt         time.Time `bson:"createdAt" json:"createdAt"`
}

// ToBase converts a stored document into the domain record.
func (d Document) ToBase() domain.Base {
	base := domain.Base{
		UUID:              d.UUID,
		Name:              d.Name,
		Type:              domain.Type(d.Type),
		Category:          domain.Category(d.Category),
		Onboardable:       d.Onboardable,
		RequiredSeniority: d.RequiredSeniority,
		CreatedAt:         d.CreatedAt,
	}
	if d.Custodian != nil {
		base.Custodian = domain.Custodian(*d.Custodian)
	}
	return base
}

// FromBase converts a domain record into its stored shape.
func FromBase(b domain.Base) Document {
	doc := Document{
		UUID:              b.UUID,
		Name:              b.Name,
		Type:              string(b.Type),
		Category:          string(b.Category),
		Onboardable:       b.Onboardable,
		RequiredSeniority: b.RequiredSeniority,
		CreatedAt:         b.CreatedAt,
	}
	if b.Custodian != domain.CustodianNone {
		custodian := string(b.Custodian)
		doc.Custodian = &custodian
	}
	return doc
}

// Repository defines product storage read operations.
type Repository interface {
	// GetProduct returns the product with the given uuid or a not found error.
	GetProduct(ctx context.Context, uuid string) (domain.Base, error)
	FindProducts(ctx context.Context, predicate Predicate, opts FindOptions) ([]domain.Base, error)
	CountProducts(ctx context.Context, predicate Predicate) (int, error)
	Ping(ctx context.Context) error
}
