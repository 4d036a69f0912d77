package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"product_catalog_backend/internal/products/domain"
	"product_catalog_backend/internal/products/repository"
	"product_catalog_backend/internal/products/transport"
	"product_catalog_backend/platform/apperr"
	"product_catalog_backend/platform/logger"
	"product_catalog_backend/platform/pagination"
)

// Service provides the product query operations.
type Service struct {
	repo repository.Repository
	log  *logger.Logger
}

// New creates a new product service.
func New(repo repository.Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// GetProduct retrieves a single product by uuid.
func (s *Service) GetProduct(ctx context.Context, uuid string) (transport.ProductResponse, error) {
	base, err := s.repo.GetProduct(ctx, uuid)
	if err != nil {
		if !apperr.Is(err, apperr.KindNotFound) {
			s.log.WithContext(ctx).DatabaseError("get product", err)
		}
		return transport.ProductResponse{}, err
	}

	product, err := resolve(base)
	if err != nil {
		return transport.ProductResponse{}, err
	}
	return toProductResponse(product), nil
}

// ListProducts returns one page of products matching filters.
// A nil page or perPage takes its default.
func (s *Service) ListProducts(ctx context.Context, page, perPage *int, filters transport.ProductFiltersInput) (transport.ProductListResponse, error) {
	currentPage, pageSize := resolvePaging(page, perPage)
	predicate := repository.FiltersToQuery(toFilters(filters))

	// Find and count are independent reads and may observe different snapshots.
	var items []domain.Base
	var total int
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.repo.FindProducts(gctx, predicate, repository.FindOptions{
			Skip:  pagination.Offset(currentPage, pageSize),
			Limit: pageSize,
		})
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.repo.CountProducts(gctx, predicate)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.WithContext(ctx).DatabaseError("list products", err)
		return transport.ProductListResponse{}, err
	}

	info := pagination.Calculate(total, currentPage, pageSize)
	if info.OutOfRange() {
		return transport.ProductListResponse{}, domain.PageOutOfRange(currentPage, info.LastPage)
	}

	products := make([]domain.Product, 0, len(items))
	for _, item := range items {
		product, err := resolve(item)
		if err != nil {
			return transport.ProductListResponse{}, err
		}
		products = append(products, product)
	}

	s.log.WithContext(ctx).Debug("products listed",
		"page", currentPage, "perPage", pageSize, "totalItems", total, "filters", predicate.Fields())
	return pagination.Map(pagination.NewPage(products, info), toProductResponse), nil
}

func resolvePaging(page, perPage *int) (int, int) {
	currentPage := pagination.DefaultPage
	if page != nil {
		currentPage = *page
	}
	pageSize := pagination.DefaultPerPage
	if perPage != nil {
		pageSize = *perPage
	}
	return currentPage, pageSize
}

func resolve(base domain.Base) (domain.Product, error) {
	product, err := domain.Resolve(base)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "invalid product record", err)
	}
	return product, nil
}

func toFilters(input transport.ProductFiltersInput) repository.Filters {
	return repository.Filters{
		UUID:        input.UUID,
		UUIDs:       input.UUIDs,
		Name:        input.Name,
		Custodian:   input.Custodian,
		Type:        input.Type,
		Category:    input.Category,
		Categories:  input.Categories,
		Onboardable: input.Onboardable,
	}
}

func toProductResponse(product domain.Product) transport.ProductResponse {
	fields := product.Fields()

	resp := transport.ProductResponse{
		Typename:          string(product.Variant()),
		UUID:              fields.UUID,
		Name:              fields.Name,
		Type:              string(fields.Type),
		Category:          string(fields.Category),
		Onboardable:       fields.Onboardable,
		RequiredSeniority: fields.RequiredSeniority,
		CreatedAt:         formatTime(fields.CreatedAt),
	}
	if fields.Custodian != domain.CustodianNone {
		custodian := string(fields.Custodian)
		resp.Custodian = &custodian
	}
	for _, regulation := range fields.Regulations {
		resp.Regulations = append(resp.Regulations, toRegulationResponse(regulation))
	}
	if fields.CurrentRegulation != nil {
		current := toRegulationResponse(*fields.CurrentRegulation)
		resp.CurrentRegulation = &current
	}
	return resp
}

func toRegulationResponse(regulation domain.Regulation) transport.RegulationResponse {
	return transport.RegulationResponse{
		UUID:                      regulation.UUID,
		From:                      formatTime(regulation.From),
		To:                        formatTime(regulation.To),
		TaxFreeLimit:              regulation.TaxFreeLimit,
		GrossLimit:                regulation.GrossLimit,
		OneSidedContributionLimit: regulation.OneSidedContributionLimit,
		ProductCategories:         regulation.ProductCategories,
		CSGPercentage:             regulation.CSGPercentage,
		CRDSPercentage:            regulation.CRDSPercentage,
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
