// Package domain holds the product model and its variant table.
package domain

import (
	"fmt"
	"time"
)

// Type is the fine-grained product type stored on every record.
type Type string

const (
	TypePee           Type = "pee"
	TypePei           Type = "pei"
	TypePercol        Type = "percol"
	TypePerob         Type = "perob"
	TypeIncentive     Type = "incentive"
	TypeParticipation Type = "participation"
)

// Category is the coarse product grouping.
type Category string

const (
	CategoryPee    Category = "pee"
	CategoryPercol Category = "percol"
	CategoryPerob  Category = "perob"
	CategoryBonus  Category = "bonus"
)

// IsPerob reports whether c is the perob category.
func (c Category) IsPerob() bool {
	return c == CategoryPerob
}

// Custodian administers a product's regulatory compliance. The zero value means none.
type Custodian string

const (
	CustodianNone    Custodian = ""
	CustodianS2E     Custodian = "s2e"
	CustodianSGSS    Custodian = "sgss"
	CustodianSogecap Custodian = "sogecap"
)

// VariantName is the concrete shape a product resolves to.
type VariantName string

const (
	VariantPee           VariantName = "Pee"
	VariantPercol        VariantName = "Percol"
	VariantPerob         VariantName = "Perob"
	VariantIncentive     VariantName = "Incentive"
	VariantParticipation VariantName = "Participation"
)

type variantEntry struct {
	variant  VariantName
	category Category
}

// variants is the single source of truth for type -> (variant, category).
var variants = map[Type]variantEntry{
	TypePee:           {variant: VariantPee, category: CategoryPee},
	TypePei:           {variant: VariantPee, category: CategoryPee},
	TypePercol:        {variant: VariantPercol, category: CategoryPercol},
	TypePerob:         {variant: VariantPerob, category: CategoryPerob},
	TypeIncentive:     {variant: VariantIncentive, category: CategoryBonus},
	TypeParticipation: {variant: VariantParticipation, category: CategoryBonus},
}

// CategoryOf returns the category implied by a product type.
func CategoryOf(t Type) (Category, bool) {
	entry, ok := variants[t]
	return entry.category, ok
}

// IsValidType reports whether s is a known product type.
func IsValidType(s string) bool {
	_, ok := variants[Type(s)]
	return ok
}

// IsValidCategory reports whether s is a known product category.
func IsValidCategory(s string) bool {
	switch Category(s) {
	case CategoryPee, CategoryPercol, CategoryPerob, CategoryBonus:
		return true
	}
	return false
}

// IsValidCustodian reports whether s names a known custodian.
func IsValidCustodian(s string) bool {
	switch Custodian(s) {
	case CustodianS2E, CustodianSGSS, CustodianSogecap:
		return true
	}
	return false
}

// Base carries the fields shared by every product variant.
type Base struct {
	UUID              string
	Name              string
	Custodian         Custodian
	Type              Type
	Category          Category
	Onboardable       bool
	RequiredSeniority *int
	Regulations       []Regulation
	CurrentRegulation *Regulation
	CreatedAt         time.Time
}

// Product is one of Pee, Percol, Perob, Incentive or Participation.
type Product interface {
	Fields() Base
	Variant() VariantName
	isProduct()
}

// Pee covers both pee and pei product types.
type Pee struct{ Base }

// Percol is a collective retirement plan.
type Percol struct{ Base }

// Perob is a mandatory retirement plan.
type Perob struct{ Base }

// Incentive is a bonus product of type incentive.
type Incentive struct{ Base }

// Participation is a bonus product of type participation.
type Participation struct{ Base }

func (p Pee) Fields() Base           { return p.Base }
func (p Percol) Fields() Base        { return p.Base }
func (p Perob) Fields() Base         { return p.Base }
func (p Incentive) Fields() Base     { return p.Base }
func (p Participation) Fields() Base { return p.Base }

func (Pee) Variant() VariantName           { return VariantPee }
func (Percol) Variant() VariantName        { return VariantPercol }
func (Perob) Variant() VariantName         { return VariantPerob }
func (Incentive) Variant() VariantName     { return VariantIncentive }
func (Participation) Variant() VariantName { return VariantParticipation }

func (Pee) isProduct()           {}
func (Percol) isProduct()        {}
func (Perob) isProduct()         {}
func (Incentive) isProduct()     {}
func (Participation) isProduct() {}

// Resolve turns a stored record into its concrete variant.
// The category is taken from the variant table so it always agrees with the type.
func Resolve(b Base) (Product, error) {
	entry, ok := variants[b.Type]
	if !ok {
		return nil, fmt.Errorf("resolve product %s: unknown type %q", b.UUID, b.Type)
	}
	b.Category = entry.category

	switch entry.variant {
	case VariantPee:
		return Pee{b}, nil
	case VariantPercol:
		return Percol{b}, nil
	case VariantPerob:
		return Perob{b}, nil
	case VariantIncentive:
		return Incentive{b}, nil
	default:
		return Participation{b}, nil
	}
}
