package service

import (
	"context"
	"fmt"

	"github.com/tuanvumaihuynh/commerce-mock/internal/apperr"
	"github.com/tuanvumaihuynh/commerce-mock/internal/model"
	"github.com/tuanvumaihuynh/commerce-mock/internal/repository"
	"github.com/tuanvumaihuynh/commerce-mock/internal/tax"
)

type CreateProductParams struct {
	Name             string
	Price            float64
	VatTax           bool
	VatTaxPercentage model.FlexFloat
	Tags             string
	Stock            int
}

type CatalogService interface {
	GetProduct(ctx context.Context, id int) (model.ProductView, error)
	ListProducts(ctx context.Context) ([]model.ProductView, error)
	SearchByTags(ctx context.Context, tags []string) ([]model.ProductView, error)
	CreateProduct(ctx context.Context, params CreateProductParams) (model.Product, error)
}

type catalogService struct {
	productRepo   repository.ProductRepository
	inventoryRepo repository.InventoryRepository
}

func NewCatalogService(
	productRepo repository.ProductRepository,
	inventoryRepo repository.InventoryRepository,
) CatalogService {
	return &catalogService{
		productRepo:   productRepo,
		inventoryRepo: inventoryRepo,
	}
}

func (s *catalogService) GetProduct(ctx context.Context, id int) (model.ProductView, error) {
	products, err := s.productRepo.ListAll(ctx)
	if err != nil {
		return model.ProductView{}, fmt.Errorf("product repository list all: %w", err)
	}

	for _, product := range products {
		if product.ID != id {
			continue
		}

		view := productView(product)

		items, err := s.inventoryRepo.ListAll(ctx)
		if err != nil {
			return model.ProductView{}, fmt.Errorf("inventory repository list all: %w", err)
		}
		for _, item := range items {
			// A zero ledger value is treated the same as no ledger
			// row at all, an inherited quirk of the data model.
			if item.ProductID == id && item.Stock > 0 {
				stock := item.Stock
				view.Stock = &stock
				break
			}
		}

		return view, nil
	}

	return model.ProductView{}, apperr.NewProductNotFound(id)
}

func (s *catalogService) ListProducts(ctx context.Context) ([]model.ProductView, error) {
	products, err := s.productRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("product repository list all: %w", err)
	}

	if len(products) == 0 {
		return nil, apperr.ErrNoProducts
	}

	views := make([]model.ProductView, 0, len(products))
	for _, product := range products {
		views = append(views, productView(product))
	}

	return views, nil
}

func (s *catalogService) SearchByTags(ctx context.Context, tags []string) ([]model.ProductView, error) {
	products, err := s.productRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("product repository list all: %w", err)
	}

	matched := make([]model.ProductView, 0)
	for _, product := range products {
		if product.HasTag(tags) {
			matched = append(matched, productView(product))
		}
	}

	return matched, nil
}

func (s *catalogService) CreateProduct(ctx context.Context, params CreateProductParams) (model.Product, error) {
	var created model.Product

	err := s.productRepo.Update(ctx, func(products []model.Product) ([]model.Product, error) {
		for _, existing := range products {
			if existing.Name == params.Name {
				return nil, apperr.ErrProductExists
			}
		}

		created = model.Product{
			ID:               repository.NextProductID(products),
			Name:             params.Name,
			Price:            params.Price,
			VatTax:           params.VatTax,
			VatTaxPercentage: params.VatTaxPercentage,
			Tags:             params.Tags,
		}

		return append(products, created), nil
	})
	if err != nil {
		return model.Product{}, err
	}

	// The ledger write happens after the catalog write with no
	// rollback; a failure here leaves the product without a stock
	// row, matching the contract of the service this one replaces.
	if _, err := s.inventoryRepo.Append(ctx, created.ID, params.Stock); err != nil {
		return model.Product{}, fmt.Errorf("inventory repository append: %w", err)
	}

	return created, nil
}

// productView applies the tax breakdown and strips tags.
func productView(p model.Product) model.ProductView {
	display := tax.Compute(p.Price, p.VatTax, float64(p.VatTaxPercentage))

	return model.ProductView{
		ID:               p.ID,
		Name:             p.Name,
		VatTax:           p.VatTax,
		VatTaxPercentage: p.VatTaxPercentage,
		PriceWithoutTax:  display.PriceWithoutTax,
		ActualPrice:      display.ActualPrice,
		TaxAmount:        display.TaxAmount,
	}
}
