package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"product_catalog_backend/internal/products/service"
	"product_catalog_backend/internal/products/transport"
	"product_catalog_backend/platform/apperr"
	"product_catalog_backend/platform/httpkit"
	"product_catalog_backend/platform/validator"
)

// Handler handles HTTP requests for products.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgInvalidID        = "invalid product uuid"
)

// New creates a new product handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// GetProductByUUID retrieves a product by uuid.
// GET /api/v1/products/:uuid
func (h *Handler) GetProductByUUID(c *gin.Context) {
	id := c.Param("uuid")
	if _, err := uuid.Parse(id); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}

	result, err := h.svc.GetProduct(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// ListProducts retrieves a page of products filtered by query parameters.
// GET /api/v1/products
func (h *Handler) ListProducts(c *gin.Context) {
	var req transport.ListProductsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.HandleError(c, apperr.Validation(msgValidationFailed).WithDetails(err.Error()))
		return
	}

	result, err := h.svc.ListProducts(c.Request.Context(), req.Page, req.PerPage, req.ProductFiltersInput)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// SearchProducts retrieves a page of products filtered by a JSON body.
// POST /api/v1/products/search
func (h *Handler) SearchProducts(c *gin.Context) {
	var req transport.SearchProductsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.HandleError(c, apperr.Validation(msgValidationFailed).WithDetails(err.Error()))
		return
	}

	result, err := h.svc.ListProducts(c.Request.Context(), req.Page, req.PerPage, req.Filters)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}
