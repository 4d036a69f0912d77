package domain

import "time"

// Regulation is a time-bounded rule set attached to product categories.
// No read path populates it yet.
type Regulation struct {
	UUID                      string
	From                      time.Time
	To                        time.Time // excluded
	TaxFreeLimit              float64
	GrossLimit                float64
	OneSidedContributionLimit float64
	ProductCategories         []string
	Products                  []Product
	CSGPercentage             float64
	CRDSPercentage            float64
}
