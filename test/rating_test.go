package test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"storefront-backend/internal/models"
	"storefront-backend/internal/services"
	"storefront-backend/test/helpers"
)

func TestBlendedRating(t *testing.T) {
	// Two seeded ratings averaging 4.0 plus one five-star user rating
	blended := models.BlendedRating(4.0, 2, models.RatingSummary{Average: 5.0, Count: 1})
	assert.InDelta(t, 4.3333, blended, 0.0001)

	// Seed only
	assert.InDelta(t, 4.5, models.BlendedRating(4.5, 10, models.RatingSummary{}), 0.0001)

	// User ratings only
	assert.InDelta(t, 3.0, models.BlendedRating(0, 0, models.RatingSummary{Average: 3.0, Count: 4}), 0.0001)
}

func TestBlendedRatingNoRatings(t *testing.T) {
	assert.Equal(t, 0.0, models.BlendedRating(0, 0, models.RatingSummary{}))
}

func TestRatingHistogramSeedOnly(t *testing.T) {
	histogram := models.RatingHistogram(100, nil)
	assert.Equal(t, [5]int{70, 20, 5, 3, 2}, histogram)
}

func TestRatingHistogramBucketsUserRatings(t *testing.T) {
	ratings := []*models.Rating{
		{Rating: 5},
		{Rating: 5},
		{Rating: 3},
		{Rating: 1},
	}

	histogram := models.RatingHistogram(0, ratings)
	assert.Equal(t, [5]int{2, 0, 1, 0, 1}, histogram)
}

func TestRatingHistogramRounding(t *testing.T) {
	// 10 seeded reviews: 7, 2, 0.5→1 (rounds away from zero), 0.3→0, 0.2→0
	histogram := models.RatingHistogram(10, nil)
	assert.Equal(t, [5]int{7, 2, 1, 0, 0}, histogram)
}

func TestRatingIsValid(t *testing.T) {
	for _, value := range []int{1, 2, 3, 4, 5} {
		r := models.Rating{Rating: value}
		assert.True(t, r.IsValid())
	}
	for _, value := range []int{0, 6, -1, 100} {
		r := models.Rating{Rating: value}
		assert.False(t, r.IsValid())
	}
}

type RatingServiceTestSuite struct {
	suite.Suite
	db        *helpers.TestDatabase
	ratings   *services.RatingService
	productID string
}

func (s *RatingServiceTestSuite) SetupTest() {
	s.db = helpers.SetupTestDatabase()
	s.ratings = services.NewRatingService(s.db.DB)

	id, err := s.db.CreateTestProduct(helpers.TestProduct{Name: "Linen Shirt", InStock: true})
	s.Require().NoError(err)
	s.productID = id
}

func (s *RatingServiceTestSuite) TearDownTest() {
	s.db.Close()
}

func (s *RatingServiceTestSuite) TestAddRating() {
	record, err := s.ratings.AddRating(s.productID, 4)
	s.NoError(err)
	s.Equal(4, record.Rating)
	s.Equal(s.productID, record.ProductID)
}

func (s *RatingServiceTestSuite) TestAddRatingRejectsOutOfRange() {
	_, err := s.ratings.AddRating(s.productID, 0)
	s.Error(err)

	_, err = s.ratings.AddRating(s.productID, 6)
	s.Error(err)
}

func (s *RatingServiceTestSuite) TestAddRatingUnknownProduct() {
	_, err := s.ratings.AddRating("no-such-product", 3)
	s.Error(err)
}

func (s *RatingServiceTestSuite) TestRepeatSubmissionsEachCount() {
	for i := 0; i < 3; i++ {
		_, err := s.ratings.AddRating(s.productID, 5)
		s.NoError(err)
	}

	summary, err := s.ratings.GetProductRatingSummary(s.productID)
	s.NoError(err)
	s.Equal(3, summary.Count)
	s.InDelta(5.0, summary.Average, 0.0001)
}

func (s *RatingServiceTestSuite) TestSummaryAveragesUserRecords() {
	for _, value := range []int{5, 4, 3} {
		_, err := s.ratings.AddRating(s.productID, value)
		s.NoError(err)
	}

	summary, err := s.ratings.GetProductRatingSummary(s.productID)
	s.NoError(err)
	s.Equal(3, summary.Count)
	s.InDelta(4.0, summary.Average, 0.0001)
}

func (s *RatingServiceTestSuite) TestSummaryEmptyProduct() {
	summary, err := s.ratings.GetProductRatingSummary(s.productID)
	s.NoError(err)
	s.Equal(0, summary.Count)
	s.Equal(0.0, summary.Average)
}

func TestRatingServiceSuite(t *testing.T) {
	suite.Run(t, new(RatingServiceTestSuite))
}
