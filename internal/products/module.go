// Package products provides the product catalog bounded context module.
package products

import (
	"fmt"

	apphttp "product_catalog_backend/internal/http"
	"product_catalog_backend/internal/products/domain"
	"product_catalog_backend/internal/products/handler"
	"product_catalog_backend/internal/products/repository"
	"product_catalog_backend/internal/products/service"
	"product_catalog_backend/platform/logger"
	"product_catalog_backend/platform/validator"
)

// Module is the products bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
}

// NewModule creates and initializes the products module on top of repo.
func NewModule(repo repository.Repository, val *validator.Validator, log *logger.Logger) (*Module, error) {
	rules := map[string]func(string) bool{
		"product_custodian": domain.IsValidCustodian,
		"product_type":      domain.IsValidType,
		"product_category":  domain.IsValidCategory,
	}
	for tag, allowed := range rules {
		if err := val.RegisterValidation(tag, validator.OneOfFunc(allowed)); err != nil {
			return nil, fmt.Errorf("register %s validation: %w", tag, err)
		}
	}

	svc := service.New(repo, log)
	return &Module{handler: handler.New(svc, val)}, nil
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "products"
}

// RegisterRoutes mounts product routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.GET("/products", m.handler.ListProducts)
	ctx.V1.GET("/products/:uuid", m.handler.GetProductByUUID)
	ctx.V1.POST("/products/search", m.handler.SearchProducts)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
