package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPaginationResponse(t *testing.T) {
	t.Run("Middle Page", func(t *testing.T) {
		pagination := BuildPaginationResponse(95, 2, 30, "/api/v1/progress/weight")

		assert.Equal(t, 95, pagination.Total)
		assert.Equal(t, 4, pagination.TotalPages)
		assert.Equal(t, "/api/v1/progress/weight?page=3&page_size=30", pagination.NextURL)
		assert.Equal(t, "/api/v1/progress/weight?page=1&page_size=30", pagination.PrevURL)
	})

	t.Run("First Page", func(t *testing.T) {
		pagination := BuildPaginationResponse(95, 1, 30, "/api/v1/progress/weight")

		assert.Empty(t, pagination.PrevURL)
		assert.NotEmpty(t, pagination.NextURL)
	})

	t.Run("Last Page", func(t *testing.T) {
		pagination := BuildPaginationResponse(95, 4, 30, "/api/v1/progress/weight")

		assert.Empty(t, pagination.NextURL)
		assert.Equal(t, "/api/v1/progress/weight?page=3&page_size=30", pagination.PrevURL)
	})

	t.Run("Empty Result", func(t *testing.T) {
		pagination := BuildPaginationResponse(0, 1, 30, "/api/v1/progress/weight")

		assert.Equal(t, 0, pagination.TotalPages)
		assert.Empty(t, pagination.NextURL)
		assert.Empty(t, pagination.PrevURL)
	})
}
