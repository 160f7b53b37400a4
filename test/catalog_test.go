package test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"storefront-backend/internal/models"
	"storefront-backend/internal/services"
	"storefront-backend/test/helpers"
)

func catalogFixture() []*models.Product {
	return []*models.Product{
		{ID: "p1", Name: "Linen Shirt", Description: "Breathable summer shirt", Category: "Men", Tag: "Shirts"},
		{ID: "p2", Name: "Denim Jacket", Description: "Classic blue denim", Category: "Men", Tag: "Jackets"},
		{ID: "p3", Name: "Floral Dress", Description: "Light summer dress", Category: "Women", Tag: "Dresses"},
		{ID: "p4", Name: "Wool Scarf", Description: "Warm winter scarf", Category: "Women", Tag: "Accessories"},
		{ID: "p5", Name: "Canvas Sneakers", Description: "Everyday sneakers", Category: "Kids", Tag: "Shoes"},
	}
}

func productIDs(products []*models.Product) []string {
	ids := make([]string, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}

func TestFilterProductsPassThrough(t *testing.T) {
	products := catalogFixture()

	// "All" and empty are equivalent pass-throughs for category and tag
	assert.Len(t, services.FilterProducts(products, "All", "All", ""), 5)
	assert.Len(t, services.FilterProducts(products, "", "", ""), 5)
}

func TestFilterProductsByCategory(t *testing.T) {
	filtered := services.FilterProducts(catalogFixture(), "Men", "All", "")
	assert.Equal(t, []string{"p1", "p2"}, productIDs(filtered))
}

func TestFilterProductsByTag(t *testing.T) {
	filtered := services.FilterProducts(catalogFixture(), "All", "Dresses", "")
	assert.Equal(t, []string{"p3"}, productIDs(filtered))
}

func TestFilterProductsByQuery(t *testing.T) {
	// Case-insensitive substring over name and description
	filtered := services.FilterProducts(catalogFixture(), "All", "All", "SUMMER")
	assert.Equal(t, []string{"p1", "p3"}, productIDs(filtered))
}

func TestFilterProductsCombined(t *testing.T) {
	filtered := services.FilterProducts(catalogFixture(), "Women", "All", "summer")
	assert.Equal(t, []string{"p3"}, productIDs(filtered))
}

func TestFilterProductsEmptyResult(t *testing.T) {
	filtered := services.FilterProducts(catalogFixture(), "Men", "Dresses", "")
	assert.Empty(t, filtered)
}

func TestFilterProductsPreservesOrder(t *testing.T) {
	filtered := services.FilterProducts(catalogFixture(), "All", "All", "")
	assert.Equal(t, []string{"p1", "p2", "p3", "p4", "p5"}, productIDs(filtered))
}

func TestDiscountPercent(t *testing.T) {
	p := models.Product{Price: 75, MRP: 100}
	assert.InDelta(t, 25.0, p.DiscountPercent(), 0.0001)

	noMRP := models.Product{Price: 75}
	assert.Equal(t, 0.0, noMRP.DiscountPercent())

	noDiscount := models.Product{Price: 100, MRP: 100}
	assert.Equal(t, 0.0, noDiscount.DiscountPercent())
}

type CatalogServiceTestSuite struct {
	suite.Suite
	db      *helpers.TestDatabase
	catalog *services.CatalogService
}

func (s *CatalogServiceTestSuite) SetupTest() {
	s.db = helpers.SetupTestDatabase()
	s.catalog = services.NewCatalogService(s.db.DB)
}

func (s *CatalogServiceTestSuite) TearDownTest() {
	s.db.Close()
}

func (s *CatalogServiceTestSuite) seedProducts(count int, category string) {
	for i := 0; i < count; i++ {
		_, err := s.db.CreateTestProduct(helpers.TestProduct{Category: category, InStock: true})
		s.Require().NoError(err)
	}
}

func (s *CatalogServiceTestSuite) TestListProductsPaginates() {
	s.seedProducts(10, "Men")

	page, err := s.catalog.ListProducts(services.ProductFilter{Page: 1, PageSize: 4})
	s.NoError(err)
	s.Len(page.Products, 4)
	s.Equal(10, page.Total)
	s.Equal(3, page.TotalPages)

	last, err := s.catalog.ListProducts(services.ProductFilter{Page: 3, PageSize: 4})
	s.NoError(err)
	s.Len(last.Products, 2)
}

func (s *CatalogServiceTestSuite) TestListProductsPageBeyondEnd() {
	s.seedProducts(3, "Men")

	page, err := s.catalog.ListProducts(services.ProductFilter{Page: 5, PageSize: 4})
	s.NoError(err)
	s.Empty(page.Products)
	s.Equal(3, page.Total)
}

func (s *CatalogServiceTestSuite) TestListProductsFilterCountsFiltered() {
	s.seedProducts(6, "Men")
	s.seedProducts(2, "Women")

	page, err := s.catalog.ListProducts(services.ProductFilter{Category: "Women", Page: 1, PageSize: 4})
	s.NoError(err)
	s.Len(page.Products, 2)
	s.Equal(2, page.Total)
	s.Equal(1, page.TotalPages)
}

func (s *CatalogServiceTestSuite) TestAddAndGetProduct() {
	created, err := s.catalog.AddProduct(&models.ProductCreation{
		Name:        "Silk Tie",
		Description: "Woven silk tie",
		Category:    "Men",
		Tag:         "Accessories",
		Price:       39.99,
		MRP:         49.99,
		InStock:     true,
	})
	s.NoError(err)
	s.NotEmpty(created.ID)

	fetched, err := s.catalog.GetProductByID(created.ID)
	s.NoError(err)
	s.Equal("Silk Tie", fetched.Name)
	s.Equal(39.99, fetched.Price)
	s.True(fetched.InStock)
}

func (s *CatalogServiceTestSuite) TestGetProductNotFound() {
	_, err := s.catalog.GetProductByID("no-such-product")
	s.Error(err)
}

func (s *CatalogServiceTestSuite) TestUpdateProductPartial() {
	id, err := s.db.CreateTestProduct(helpers.TestProduct{Name: "Old Name", Price: 10, InStock: true})
	s.Require().NoError(err)

	newName := "New Name"
	updated, err := s.catalog.UpdateProduct(id, &models.ProductUpdate{Name: &newName})
	s.NoError(err)
	s.Equal("New Name", updated.Name)
	s.Equal(10.0, updated.Price)
}

func (s *CatalogServiceTestSuite) TestDeleteProduct() {
	id, err := s.db.CreateTestProduct(helpers.TestProduct{InStock: true})
	s.Require().NoError(err)

	s.NoError(s.catalog.DeleteProduct(id))

	_, err = s.catalog.GetProductByID(id)
	s.Error(err)

	s.Error(s.catalog.DeleteProduct(id))
}

func TestCatalogServiceSuite(t *testing.T) {
	suite.Run(t, new(CatalogServiceTestSuite))
}
