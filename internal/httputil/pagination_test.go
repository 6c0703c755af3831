package httputil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paginationContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/v1/tasks?"+rawQuery, nil)
	return c
}

func TestParsePagination(t *testing.T) {
	t.Run("Success_Defaults", func(t *testing.T) {
		offset, limit, err := ParsePagination(paginationContext(t, ""))
		require.NoError(t, err)

		assert.Equal(t, 0, offset)
		assert.Equal(t, 50, limit)
	})

	t.Run("Success_ExplicitValues", func(t *testing.T) {
		offset, limit, err := ParsePagination(paginationContext(t, "offset=20&limit=10"))
		require.NoError(t, err)

		assert.Equal(t, 20, offset)
		assert.Equal(t, 10, limit)
	})

	t.Run("Success_MaximumLimit", func(t *testing.T) {
		_, limit, err := ParsePagination(paginationContext(t, "limit=100"))
		require.NoError(t, err)

		assert.Equal(t, 100, limit)
	})

	t.Run("Error_NegativeOffset", func(t *testing.T) {
		_, _, err := ParsePagination(paginationContext(t, "offset=-1"))
		assert.ErrorContains(t, err, "offset")
	})

	t.Run("Error_NonIntegerOffset", func(t *testing.T) {
		_, _, err := ParsePagination(paginationContext(t, "offset=abc"))
		assert.ErrorContains(t, err, "offset")
	})

	t.Run("Error_ZeroLimit", func(t *testing.T) {
		_, _, err := ParsePagination(paginationContext(t, "limit=0"))
		assert.ErrorContains(t, err, "limit")
	})

	t.Run("Error_LimitAboveMaximum", func(t *testing.T) {
		_, _, err := ParsePagination(paginationContext(t, "limit=101"))
		assert.ErrorContains(t, err, "limit")
	})

	t.Run("Error_NonIntegerLimit", func(t *testing.T) {
		_, _, err := ParsePagination(paginationContext(t, "limit=ten"))
		assert.ErrorContains(t, err, "limit")
	})
}
