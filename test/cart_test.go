package test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"storefront-backend/internal/models"
	"storefront-backend/internal/services"
	"storefront-backend/test/helpers"
)

const testSession = "session-abc"

type CartServiceTestSuite struct {
	suite.Suite
	db        *helpers.TestDatabase
	cart      *services.CartService
	productID string
}

func (s *CartServiceTestSuite) SetupTest() {
	s.db = helpers.SetupTestDatabase()
	s.cart = services.NewCartService(s.db.DB)

	id, err := s.db.CreateTestProduct(helpers.TestProduct{Name: "Linen Shirt", Price: 25.00, InStock: true})
	s.Require().NoError(err)
	s.productID = id
}

func (s *CartServiceTestSuite) TearDownTest() {
	s.db.Close()
}

func (s *CartServiceTestSuite) TestAddToCart() {
	s.NoError(s.cart.AddToCart(testSession, s.productID, 2))

	items, err := s.cart.GetCart(testSession)
	s.NoError(err)
	s.Len(items, 1)
	s.Equal(2, items[0].Quantity)
	s.Equal(25.00, items[0].Price)
	s.Require().NotNil(items[0].Product)
	s.Equal("Linen Shirt", items[0].Product.Name)
}

func (s *CartServiceTestSuite) TestAddToCartMergesDuplicates() {
	s.NoError(s.cart.AddToCart(testSession, s.productID, 2))
	s.NoError(s.cart.AddToCart(testSession, s.productID, 3))

	items, err := s.cart.GetCart(testSession)
	s.NoError(err)
	s.Len(items, 1)
	s.Equal(5, items[0].Quantity)
}

func (s *CartServiceTestSuite) TestAddToCartUnknownProduct() {
	s.Error(s.cart.AddToCart(testSession, "no-such-product", 1))
}

func (s *CartServiceTestSuite) TestAddToCartOutOfStock() {
	id, err := s.db.CreateTestProduct(helpers.TestProduct{Name: "Sold Out", InStock: false})
	s.Require().NoError(err)

	s.Error(s.cart.AddToCart(testSession, id, 1))
}

func (s *CartServiceTestSuite) TestAddToCartRejectsZeroQuantity() {
	s.Error(s.cart.AddToCart(testSession, s.productID, 0))
}

func (s *CartServiceTestSuite) TestUpdateQuantitySetsDirectly() {
	s.NoError(s.cart.AddToCart(testSession, s.productID, 2))
	s.NoError(s.cart.UpdateQuantity(testSession, s.productID, 7))

	items, err := s.cart.GetCart(testSession)
	s.NoError(err)
	s.Require().Len(items, 1)
	s.Equal(7, items[0].Quantity)
}

func (s *CartServiceTestSuite) TestUpdateQuantityBelowOneRemoves() {
	s.NoError(s.cart.AddToCart(testSession, s.productID, 2))
	s.NoError(s.cart.UpdateQuantity(testSession, s.productID, 0))

	items, err := s.cart.GetCart(testSession)
	s.NoError(err)
	s.Empty(items)
}

func (s *CartServiceTestSuite) TestRemoveAbsentItemIsNotAnError() {
	s.NoError(s.cart.RemoveFromCart(testSession, "no-such-product"))
}

func (s *CartServiceTestSuite) TestClearCart() {
	other, err := s.db.CreateTestProduct(helpers.TestProduct{Name: "Wool Scarf", Price: 15.00, InStock: true})
	s.Require().NoError(err)

	s.NoError(s.cart.AddToCart(testSession, s.productID, 1))
	s.NoError(s.cart.AddToCart(testSession, other, 1))
	s.NoError(s.cart.ClearCart(testSession))

	items, err := s.cart.GetCart(testSession)
	s.NoError(err)
	s.Empty(items)
}

func (s *CartServiceTestSuite) TestCartTotalIsDerived() {
	other, err := s.db.CreateTestProduct(helpers.TestProduct{Name: "Wool Scarf", Price: 15.00, InStock: true})
	s.Require().NoError(err)

	s.NoError(s.cart.AddToCart(testSession, s.productID, 2)) // 50.00
	s.NoError(s.cart.AddToCart(testSession, other, 1))       // 15.00

	total, err := s.cart.CartTotal(testSession)
	s.NoError(err)
	s.InDelta(65.00, total, 0.0001)

	// Total follows every mutation
	s.NoError(s.cart.UpdateQuantity(testSession, s.productID, 1))
	total, err = s.cart.CartTotal(testSession)
	s.NoError(err)
	s.InDelta(40.00, total, 0.0001)

	s.NoError(s.cart.RemoveFromCart(testSession, other))
	total, err = s.cart.CartTotal(testSession)
	s.NoError(err)
	s.InDelta(25.00, total, 0.0001)
}

func (s *CartServiceTestSuite) TestCartsAreSessionScoped() {
	s.NoError(s.cart.AddToCart(testSession, s.productID, 1))

	items, err := s.cart.GetCart("other-session")
	s.NoError(err)
	s.Empty(items)
}

func (s *CartServiceTestSuite) TestCartTotalModel() {
	items := []*models.CartItem{
		{Quantity: 2, Price: 10.00},
		{Quantity: 1, Price: 5.50},
	}
	s.InDelta(25.50, models.CartTotal(items), 0.0001)
	s.Equal(0.0, models.CartTotal(nil))
}

func TestCartServiceSuite(t *testing.T) {
	suite.Run(t, new(CartServiceTestSuite))
}
