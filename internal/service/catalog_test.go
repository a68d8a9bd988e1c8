package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/commerce-mock/internal/apperr"
	"github.com/tuanvumaihuynh/commerce-mock/internal/model"
	"github.com/tuanvumaihuynh/commerce-mock/internal/repository"
	"github.com/tuanvumaihuynh/commerce-mock/internal/service"
	"github.com/tuanvumaihuynh/commerce-mock/internal/storage/jsonfile"
)

type catalogFixture struct {
	svc           service.CatalogService
	productRepo   repository.ProductRepository
	inventoryRepo repository.InventoryRepository
}

func newCatalogFixture(t *testing.T) catalogFixture {
	t.Helper()

	store, err := jsonfile.New(t.TempDir())
	require.NoError(t, err)
	for _, name := range repository.Files {
		require.NoError(t, store.Seed(name))
	}

	productRepo := repository.NewProductRepository(store)
	inventoryRepo := repository.NewInventoryRepository(store)

	return catalogFixture{
		svc:           service.NewCatalogService(productRepo, inventoryRepo),
		productRepo:   productRepo,
		inventoryRepo: inventoryRepo,
	}
}

func (f catalogFixture) mustCreate(t *testing.T, params service.CreateProductParams) model.Product {
	t.Helper()
	product, err := f.svc.CreateProduct(context.Background(), params)
	require.NoError(t, err)
	return product
}

func TestCreateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Should assign id 1 against an empty catalog and pair an inventory row", func(t *testing.T) {
		f := newCatalogFixture(t)

		product := f.mustCreate(t, service.CreateProductParams{
			Name: "Widget", Price: 100, VatTax: true, VatTaxPercentage: 10, Stock: 5,
		})

		assert.Equal(t, 1, product.ID)
		assert.Equal(t, "Widget", product.Name)

		items, err := f.inventoryRepo.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, model.InventoryItem{ID: 1, ProductID: 1, Stock: 5}, items[0])
	})

	t.Run("Should reject a duplicate name without appending", func(t *testing.T) {
		f := newCatalogFixture(t)
		f.mustCreate(t, service.CreateProductParams{Name: "Widget", Price: 100})

		_, err := f.svc.CreateProduct(ctx, service.CreateProductParams{Name: "Widget", Price: 50})

		var appErr apperr.Error
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperr.StatusConflict, appErr.Status())
		assert.Equal(t, "Product already exists. Try updating the inventory", appErr.Msg())

		products, err := f.productRepo.ListAll(ctx)
		require.NoError(t, err)
		assert.Len(t, products, 1)
	})

	t.Run("Should assign one past the highest existing id", func(t *testing.T) {
		f := newCatalogFixture(t)
		f.mustCreate(t, service.CreateProductParams{Name: "A"})
		f.mustCreate(t, service.CreateProductParams{Name: "B"})

		product := f.mustCreate(t, service.CreateProductParams{Name: "C"})
		assert.Equal(t, 3, product.ID)
	})
}

func TestGetProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Should join stock and apply the tax breakdown", func(t *testing.T) {
		f := newCatalogFixture(t)
		f.mustCreate(t, service.CreateProductParams{
			Name: "Widget", Price: 100, VatTax: true, VatTaxPercentage: 10,
			Tags: "electronics", Stock: 5,
		})

		view, err := f.svc.GetProduct(ctx, 1)
		require.NoError(t, err)

		assert.Equal(t, 100.0, view.PriceWithoutTax)
		assert.Equal(t, 110.0, view.ActualPrice)
		require.NotNil(t, view.TaxAmount)
		assert.Equal(t, 10.0, *view.TaxAmount)
		require.NotNil(t, view.Stock)
		assert.Equal(t, 5, *view.Stock)
	})

	t.Run("Should treat a zero ledger value as no stock data", func(t *testing.T) {
		f := newCatalogFixture(t)
		f.mustCreate(t, service.CreateProductParams{Name: "Widget", Price: 100, Stock: 0})

		view, err := f.svc.GetProduct(ctx, 1)
		require.NoError(t, err)
		assert.Nil(t, view.Stock)
	})

	t.Run("Should fail with a message echoing the missing id", func(t *testing.T) {
		f := newCatalogFixture(t)

		_, err := f.svc.GetProduct(ctx, 42)

		var appErr apperr.Error
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperr.StatusNotFound, appErr.Status())
		assert.Equal(t, "No product with id 42", appErr.Msg())
	})
}

func TestListProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("Should fail when the catalog is empty", func(t *testing.T) {
		f := newCatalogFixture(t)

		_, err := f.svc.ListProducts(ctx)

		var appErr apperr.Error
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "No products provided", appErr.Msg())
	})

	t.Run("Should return identical views across calls without writes", func(t *testing.T) {
		f := newCatalogFixture(t)
		f.mustCreate(t, service.CreateProductParams{Name: "A", Price: 100, VatTax: true, VatTaxPercentage: 10})
		f.mustCreate(t, service.CreateProductParams{Name: "B", Price: 50})

		first, err := f.svc.ListProducts(ctx)
		require.NoError(t, err)
		second, err := f.svc.ListProducts(ctx)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Len(t, first, 2)
	})
}

func TestSearchByTags(t *testing.T) {
	ctx := context.Background()

	t.Run("Should match any trimmed tag and strip tags from views", func(t *testing.T) {
		f := newCatalogFixture(t)
		f.mustCreate(t, service.CreateProductParams{Name: "TV", Price: 500, Tags: "electronics, home"})
		f.mustCreate(t, service.CreateProductParams{Name: "Chair", Price: 80, Tags: "furniture"})
		f.mustCreate(t, service.CreateProductParams{Name: "Untagged", Price: 10})

		views, err := f.svc.SearchByTags(ctx, []string{"electronics"})
		require.NoError(t, err)

		require.Len(t, views, 1)
		assert.Equal(t, "TV", views[0].Name)
	})

	t.Run("Should return an empty slice when nothing matches", func(t *testing.T) {
		f := newCatalogFixture(t)
		f.mustCreate(t, service.CreateProductParams{Name: "TV", Price: 500, Tags: "electronics"})

		views, err := f.svc.SearchByTags(ctx, []string{"garden"})
		require.NoError(t, err)
		assert.Empty(t, views)
	})
}
