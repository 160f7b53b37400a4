package test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront-backend/internal/utils"
)

func TestPaginateBasic(t *testing.T) {
	data := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	assert.Equal(t, []int{1, 2, 3, 4}, utils.Paginate(data, 1, 4))
	assert.Equal(t, []int{5, 6, 7, 8}, utils.Paginate(data, 2, 4))
	assert.Equal(t, []int{9, 10}, utils.Paginate(data, 3, 4))
}

func TestPaginatePageNeverExceedsSize(t *testing.T) {
	data := make([]int, 23)
	for i := range data {
		data[i] = i
	}

	for page := 1; page <= 10; page++ {
		result := utils.Paginate(data, page, 4)
		assert.LessOrEqual(t, len(result), 4, "page %d exceeds page size", page)
	}
}

func TestPaginateConcatenationReconstructsInput(t *testing.T) {
	data := []string{"a", "b", "c", "d", "e", "f", "g"}

	var reconstructed []string
	for page := 1; page <= utils.TotalPages(len(data), 3); page++ {
		reconstructed = append(reconstructed, utils.Paginate(data, page, 3)...)
	}

	assert.Equal(t, data, reconstructed)
}

func TestPaginateOutOfRange(t *testing.T) {
	data := []int{1, 2, 3}

	// No clamping: pages beyond the end and invalid pages are empty
	assert.Empty(t, utils.Paginate(data, 2, 4))
	assert.Empty(t, utils.Paginate(data, 100, 4))
	assert.Empty(t, utils.Paginate(data, 0, 4))
	assert.Empty(t, utils.Paginate(data, -1, 4))
}

func TestPaginateEmptyInput(t *testing.T) {
	assert.Empty(t, utils.Paginate([]int{}, 1, 4))
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, utils.TotalPages(0, 4))
	assert.Equal(t, 1, utils.TotalPages(1, 4))
	assert.Equal(t, 1, utils.TotalPages(4, 4))
	assert.Equal(t, 2, utils.TotalPages(5, 4))
	assert.Equal(t, 3, utils.TotalPages(10, 4))
	assert.Equal(t, 0, utils.TotalPages(10, 0))
}
