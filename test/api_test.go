package test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"

	"storefront-backend/test/helpers"
)

type APITestSuite struct {
	suite.Suite
	ts *helpers.TestSuite
}

func (s *APITestSuite) SetupTest() {
	s.ts = helpers.NewTestSuite(s.T())
}

func (s *APITestSuite) TearDownTest() {
	s.ts.Cleanup()
}

func (s *APITestSuite) seedProduct(name, category string, price float64) string {
	id, err := s.ts.DB.CreateTestProduct(helpers.TestProduct{
		Name:     name,
		Category: category,
		Price:    price,
		InStock:  true,
	})
	s.Require().NoError(err)
	return id
}

func (s *APITestSuite) TestGetProductsPagination() {
	for i := 0; i < 6; i++ {
		s.seedProduct("Shirt", "Men", 20)
	}

	w := helpers.MakeRequest(s.ts.Router, "GET", "/api/v1/products?page=1", nil, nil)
	response := helpers.AssertSuccessResponse(s.T(), w, http.StatusOK)

	data := response["data"].(map[string]interface{})
	s.Len(data["products"].([]interface{}), 4)
	s.Equal(float64(6), data["total"])
	s.Equal(float64(2), data["totalPages"])

	w = helpers.MakeRequest(s.ts.Router, "GET", "/api/v1/products?page=2", nil, nil)
	response = helpers.AssertSuccessResponse(s.T(), w, http.StatusOK)
	data = response["data"].(map[string]interface{})
	s.Len(data["products"].([]interface{}), 2)
}

func (s *APITestSuite) TestGetProductsCategoryFilter() {
	s.seedProduct("Shirt", "Men", 20)
	s.seedProduct("Dress", "Women", 40)

	w := helpers.MakeRequest(s.ts.Router, "GET", "/api/v1/products?category=Women", nil, nil)
	response := helpers.AssertSuccessResponse(s.T(), w, http.StatusOK)

	data := response["data"].(map[string]interface{})
	products := data["products"].([]interface{})
	s.Len(products, 1)
	s.Equal("Dress", products[0].(map[string]interface{})["name"])
}

func (s *APITestSuite) TestGetProductBlendsSeedAndUserRatings() {
	id, err := s.ts.DB.CreateTestProduct(helpers.TestProduct{
		Name:        "Rated Shirt",
		InStock:     true,
		Rating:      4.0,
		ReviewCount: 2,
	})
	s.Require().NoError(err)

	w := helpers.MakeRequest(s.ts.Router, "POST", "/api/v1/products/"+id+"/ratings",
		map[string]int{"rating": 5}, nil)
	helpers.AssertSuccessResponse(s.T(), w, http.StatusCreated)

	w = helpers.MakeRequest(s.ts.Router, "GET", "/api/v1/products/"+id, nil, nil)
	response := helpers.AssertSuccessResponse(s.T(), w, http.StatusOK)

	data := response["data"].(map[string]interface{})
	s.InDelta(4.3333, data["blendedRating"].(float64), 0.0001)
	s.Equal(float64(3), data["totalRatings"])
}

func (s *APITestSuite) TestGetProductNotFound() {
	w := helpers.MakeRequest(s.ts.Router, "GET", "/api/v1/products/no-such-id", nil, nil)
	helpers.AssertErrorResponse(s.T(), w, http.StatusNotFound)
}

func (s *APITestSuite) TestCartRequiresSessionHeader() {
	w := helpers.MakeRequest(s.ts.Router, "GET", "/api/v1/cart", nil, nil)
	helpers.AssertErrorResponse(s.T(), w, http.StatusBadRequest)
}

func (s *APITestSuite) TestCartFlow() {
	productID := s.seedProduct("Shirt", "Men", 25)
	headers := helpers.SessionHeaders("session-1")

	// Add twice: quantities merge into one line item
	body := map[string]interface{}{"productId": productID, "quantity": 2}
	w := helpers.MakeRequest(s.ts.Router, "POST", "/api/v1/cart", body, headers)
	helpers.AssertSuccessResponse(s.T(), w, http.StatusOK)

	body["quantity"] = 3
	w = helpers.MakeRequest(s.ts.Router, "POST", "/api/v1/cart", body, headers)
	response := helpers.AssertSuccessResponse(s.T(), w, http.StatusOK)

	data := response["data"].(map[string]interface{})
	items := data["items"].([]interface{})
	s.Len(items, 1)
	s.Equal(float64(5), items[0].(map[string]interface{})["quantity"])
	s.InDelta(125.0, data["total"].(float64), 0.0001)

	// Setting quantity to zero removes the item
	w = helpers.MakeRequest(s.ts.Router, "PUT", "/api/v1/cart",
		map[string]interface{}{"productId": productID, "quantity": 0}, headers)
	response = helpers.AssertSuccessResponse(s.T(), w, http.StatusOK)
	data = response["data"].(map[string]interface{})
	s.Empty(data["items"])
	s.Equal(float64(0), data["total"])
}

func (s *APITestSuite) TestCheckoutFlow() {
	productID := s.seedProduct("Shirt", "Men", 25)
	headers := helpers.SessionHeaders("session-1")

	w := helpers.MakeRequest(s.ts.Router, "POST", "/api/v1/cart",
		map[string]interface{}{"productId": productID, "quantity": 2}, headers)
	helpers.AssertSuccessResponse(s.T(), w, http.StatusOK)

	checkout := map[string]interface{}{
		"customer": map[string]string{
			"fullName": "Jane Doe",
			"email":    "jane@example.com",
			"address":  "1 Main St",
			"city":     "Springfield",
			"zipCode":  "12345",
		},
		"payment": map[string]string{"method": "card", "cardLast4": "4242"},
	}
	w = helpers.MakeRequest(s.ts.Router, "POST", "/api/v1/checkout", checkout, headers)
	response := helpers.AssertSuccessResponse(s.T(), w, http.StatusCreated)

	order := response["data"].(map[string]interface{})
	s.Equal("pending", order["status"])
	s.InDelta(50.0, order["total"].(float64), 0.0001)
	orderID := order["id"].(string)

	// Cart is cleared by checkout
	w = helpers.MakeRequest(s.ts.Router, "GET", "/api/v1/cart", nil, headers)
	response = helpers.AssertSuccessResponse(s.T(), w, http.StatusOK)
	s.Empty(response["data"].(map[string]interface{})["items"])

	// Order confirmation is publicly readable by id
	w = helpers.MakeRequest(s.ts.Router, "GET", "/api/v1/orders/"+orderID, nil, nil)
	helpers.AssertSuccessResponse(s.T(), w, http.StatusOK)
}

func (s *APITestSuite) TestCheckoutEmptyCart() {
	headers := helpers.SessionHeaders("session-1")
	checkout := map[string]interface{}{
		"customer": map[string]string{"fullName": "Jane Doe"},
	}

	w := helpers.MakeRequest(s.ts.Router, "POST", "/api/v1/checkout", checkout, headers)
	helpers.AssertErrorResponse(s.T(), w, http.StatusBadRequest)
}

func (s *APITestSuite) TestWishlistFlow() {
	productID := s.seedProduct("Shirt", "Men", 25)
	headers := helpers.SessionHeaders("session-1")

	w := helpers.MakeRequest(s.ts.Router, "POST", "/api/v1/wishlist",
		map[string]string{"productId": productID}, headers)
	response := helpers.AssertSuccessResponse(s.T(), w, http.StatusOK)
	s.Len(response["data"].([]interface{}), 1)

	// Saving again is idempotent
	w = helpers.MakeRequest(s.ts.Router, "POST", "/api/v1/wishlist",
		map[string]string{"productId": productID}, headers)
	response = helpers.AssertSuccessResponse(s.T(), w, http.StatusOK)
	s.Len(response["data"].([]interface{}), 1)

	w = helpers.MakeRequest(s.ts.Router, "DELETE", "/api/v1/wishlist/"+productID, nil, headers)
	response = helpers.AssertSuccessResponse(s.T(), w, http.StatusOK)
	s.Empty(response["data"])
}

func (s *APITestSuite) TestNewsletterSubscribe() {
	w := helpers.MakeRequest(s.ts.Router, "POST", "/api/v1/newsletter/subscribe",
		map[string]string{"email": "Shopper@Example.com"}, nil)
	helpers.AssertSuccessResponse(s.T(), w, http.StatusCreated)

	// Duplicate after normalization
	w = helpers.MakeRequest(s.ts.Router, "POST", "/api/v1/newsletter/subscribe",
		map[string]string{"email": "shopper@example.com"}, nil)
	helpers.AssertErrorResponse(s.T(), w, http.StatusBadRequest)

	w = helpers.MakeRequest(s.ts.Router, "POST", "/api/v1/newsletter/subscribe",
		map[string]string{"email": "not-an-email"}, nil)
	helpers.AssertErrorResponse(s.T(), w, http.StatusBadRequest)
}

func (s *APITestSuite) TestSettingsDefaultsAndUpdate() {
	w := helpers.MakeRequest(s.ts.Router, "GET", "/api/v1/settings", nil, nil)
	response := helpers.AssertSuccessResponse(s.T(), w, http.StatusOK)
	s.Equal("USD", response["data"].(map[string]interface{})["currency"])

	w = helpers.MakeRequest(s.ts.Router, "PUT", "/api/v1/admin/settings",
		map[string]string{"siteName": "Velora"}, s.ts.AdminHeaders())
	helpers.AssertSuccessResponse(s.T(), w, http.StatusOK)

	w = helpers.MakeRequest(s.ts.Router, "GET", "/api/v1/settings", nil, nil)
	response = helpers.AssertSuccessResponse(s.T(), w, http.StatusOK)
	data := response["data"].(map[string]interface{})
	s.Equal("Velora", data["siteName"])
	s.Equal("USD", data["currency"])
}

func (s *APITestSuite) TestAdminRoutesRequireToken() {
	w := helpers.MakeRequest(s.ts.Router, "GET", "/api/v1/admin/orders", nil, nil)
	helpers.AssertErrorResponse(s.T(), w, http.StatusUnauthorized)

	w = helpers.MakeRequest(s.ts.Router, "GET", "/api/v1/admin/orders", nil,
		map[string]string{"Authorization": "Bearer not-a-token"})
	helpers.AssertErrorResponse(s.T(), w, http.StatusUnauthorized)
}

func (s *APITestSuite) TestAdminProductLifecycle() {
	creation := map[string]interface{}{
		"name":        "Silk Tie",
		"description": "Woven silk tie",
		"category":    "Men",
		"price":       39.99,
		"inStock":     true,
	}
	w := helpers.MakeRequest(s.ts.Router, "POST", "/api/v1/admin/products", creation, s.ts.AdminHeaders())
	response := helpers.AssertSuccessResponse(s.T(), w, http.StatusCreated)
	id := response["data"].(map[string]interface{})["id"].(string)

	w = helpers.MakeRequest(s.ts.Router, "PUT", "/api/v1/admin/products/"+id,
		map[string]interface{}{"price": 29.99}, s.ts.AdminHeaders())
	response = helpers.AssertSuccessResponse(s.T(), w, http.StatusOK)
	s.Equal(29.99, response["data"].(map[string]interface{})["price"])

	w = helpers.MakeRequest(s.ts.Router, "DELETE", "/api/v1/admin/products/"+id, nil, s.ts.AdminHeaders())
	helpers.AssertSuccessResponse(s.T(), w, http.StatusOK)

	w = helpers.MakeRequest(s.ts.Router, "GET", "/api/v1/products/"+id, nil, nil)
	helpers.AssertErrorResponse(s.T(), w, http.StatusNotFound)
}

func (s *APITestSuite) TestAdminOrderStatusUpdate() {
	productID := s.seedProduct("Shirt", "Men", 25)
	headers := helpers.SessionHeaders("session-1")

	w := helpers.MakeRequest(s.ts.Router, "POST", "/api/v1/cart",
		map[string]interface{}{"productId": productID, "quantity": 1}, headers)
	helpers.AssertSuccessResponse(s.T(), w, http.StatusOK)

	checkout := map[string]interface{}{
		"customer": map[string]string{"fullName": "Jane Doe", "zipCode": "12345"},
	}
	w = helpers.MakeRequest(s.ts.Router, "POST", "/api/v1/checkout", checkout, headers)
	response := helpers.AssertSuccessResponse(s.T(), w, http.StatusCreated)
	orderID := response["data"].(map[string]interface{})["id"].(string)

	w = helpers.MakeRequest(s.ts.Router, "PUT", "/api/v1/admin/orders/"+orderID+"/status",
		map[string]string{"status": "shipped"}, s.ts.AdminHeaders())
	helpers.AssertSuccessResponse(s.T(), w, http.StatusOK)

	w = helpers.MakeRequest(s.ts.Router, "PUT", "/api/v1/admin/orders/"+orderID+"/status",
		map[string]string{"status": "refunded"}, s.ts.AdminHeaders())
	helpers.AssertErrorResponse(s.T(), w, http.StatusBadRequest)

	w = helpers.MakeRequest(s.ts.Router, "GET", "/api/v1/admin/customers", nil, s.ts.AdminHeaders())
	response = helpers.AssertSuccessResponse(s.T(), w, http.StatusOK)
	s.Len(response["data"].([]interface{}), 1)
}

func (s *APITestSuite) TestLogoutRevokesToken() {
	w := helpers.MakeRequest(s.ts.Router, "POST", "/api/v1/auth/logout", nil, s.ts.AdminHeaders())
	helpers.AssertSuccessResponse(s.T(), w, http.StatusOK)

	w = helpers.MakeRequest(s.ts.Router, "GET", "/api/v1/admin/orders", nil, s.ts.AdminHeaders())
	helpers.AssertErrorResponse(s.T(), w, http.StatusUnauthorized)
}

func (s *APITestSuite) TestLoginRejectsBadCredentials() {
	w := helpers.MakeRequest(s.ts.Router, "POST", "/api/v1/auth/login",
		map[string]string{"email": s.ts.Config.AdminEmail, "password": "wrong"}, nil)
	helpers.AssertErrorResponse(s.T(), w, http.StatusUnauthorized)
}

func (s *APITestSuite) TestGenerateImageFallsBack() {
	// No API key configured: the endpoint must still return a usable image
	w := helpers.MakeRequest(s.ts.Router, "POST", "/api/v1/ai/generate-image",
		map[string]string{"prompt": "summer banner"}, nil)
	response := helpers.AssertSuccessResponse(s.T(), w, http.StatusOK)

	data := response["data"].(map[string]interface{})
	s.Equal(true, data["fallback"])
	s.NotEmpty(data["image"])
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}
