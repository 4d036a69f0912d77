package domain

import (
	"fmt"

	"product_catalog_backend/platform/apperr"
)

// NotFoundDetails is attached to ProductNotFound errors.
type NotFoundDetails struct {
	UUID string `json:"uuid"`
}

// PageOutOfRangeDetails is attached to PageOutOfRange errors.
type PageOutOfRangeDetails struct {
	Page     int `json:"page"`
	LastPage int `json:"lastPage"`
}

// ProductNotFound reports that no product carries the given uuid.
func ProductNotFound(uuid string) *apperr.Error {
	return apperr.NotFound(fmt.Sprintf("No product found with %q UUID", uuid)).
		WithDetails(NotFoundDetails{UUID: uuid})
}

// PageOutOfRange reports a page request beyond the last page.
func PageOutOfRange(page, lastPage int) *apperr.Error {
	return apperr.BadRequest(fmt.Sprintf("Page %d does not exist, last page is %d", page, lastPage)).
		WithDetails(PageOutOfRangeDetails{Page: page, LastPage: lastPage})
}
