package transport

import "product_catalog_backend/platform/pagination"

// ProductFiltersInput mirrors the filters object of a product listing.
// Deprecated fields remain accepted and take precedence over their plural forms.
type ProductFiltersInput struct {
	UUID        *string  `json:"uuid,omitempty" form:"uuid" validate:"omitempty,uuid"`
	UUIDs       []string `json:"uuids,omitempty" form:"uuids" validate:"omitempty,dive,uuid"`
	Name        *string  `json:"name,omitempty" form:"name"`
	Custodian   *string  `json:"custodian,omitempty" form:"custodian" validate:"omitempty,product_custodian"`
	Type        *string  `json:"type,omitempty" form:"type" validate:"omitempty,product_type"`
	Category    *string  `json:"category,omitempty" form:"category" validate:"omitempty,product_category"`
	Categories  []string `json:"categories,omitempty" form:"categories" validate:"omitempty,dive,product_category"`
	Onboardable *bool    `json:"onboardable,omitempty" form:"onboardable"`
}

// ListProductsRequest carries the query-string form of a product listing.
type ListProductsRequest struct {
	Page    *int `form:"page" validate:"omitempty,min=1"`
	PerPage *int `form:"perPage" validate:"omitempty,min=1"`
	ProductFiltersInput
}

// SearchProductsRequest carries the JSON body form of a product listing.
type SearchProductsRequest struct {
	Page    *int                `json:"page" validate:"omitempty,min=1"`
	PerPage *int                `json:"perPage" validate:"omitempty,min=1"`
	Filters ProductFiltersInput `json:"filters"`
}

// RegulationResponse is the wire form of a regulation.
type RegulationResponse struct {
	UUID                      string   `json:"uuid"`
	From                      string   `json:"from"`
	To                        string   `json:"to"`
	TaxFreeLimit              float64  `json:"taxFreeLimit"`
	GrossLimit                float64  `json:"grossLimit"`
	OneSidedContributionLimit float64  `json:"oneSidedContributionLimit"`
	ProductCategories         []string `json:"productCategories"`
	CSGPercentage             float64  `json:"csgPercentage"`
	CRDSPercentage            float64  `json:"crdsPercentage"`
}

// ProductResponse is the wire form of a product; Typename names the resolved variant.
type ProductResponse struct {
	Typename          string               `json:"__typename"`
	UUID              string               `json:"uuid"`
	Name              string               `json:"name"`
	Custodian         *string              `json:"custodian"`
	Type              string               `json:"type"`
	Category          string               `json:"category"`
	Onboardable       bool                 `json:"onboardable"`
	RequiredSeniority *int                 `json:"requiredSeniority"`
	Regulations       []RegulationResponse `json:"regulations,omitempty"`
	CurrentRegulation *RegulationResponse  `json:"currentRegulation,omitempty"`
	CreatedAt         string               `json:"createdAt"`
}

// ProductListResponse is a page of products.
type ProductListResponse = pagination.Page[ProductResponse]
