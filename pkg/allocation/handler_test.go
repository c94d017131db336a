package allocation

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter() *mux.Router {
	handler := NewHandler(NewCsvRenderer())
	router := mux.NewRouter()
	router.HandleFunc("/api/methods", handler.ListMethods).Methods("GET")
	router.HandleFunc("/api/methods/{methodId}", handler.GetMethod).Methods("GET")
	router.HandleFunc("/api/methods/{methodId}/allocation", handler.Allocate).Methods("GET")
	return router
}

func TestHandler_ListMethods(t *testing.T) {
	router := setupRouter()
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/methods", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var methods []MethodDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&methods))
	require.Len(t, methods, 5)
	assert.Equal(t, "nws", methods[0].Id)
}

func TestHandler_GetMethod(t *testing.T) {
	router := setupRouter()

	t.Run("known method", func(t *testing.T) {
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/methods/Kakeibo", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		var method MethodDTO
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&method))
		assert.Equal(t, "kakeibo", method.Id)
	})

	t.Run("unknown method", func(t *testing.T) {
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/methods/envelope", nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "unsupported allocation method")
	})
}

func TestHandler_Allocate(t *testing.T) {
	router := setupRouter()

	t.Run("should return rounded tree", func(t *testing.T) {
		// given
		req := httptest.NewRequest(http.MethodGet, "/api/methods/nws/allocation?amount=33333.333&detailed=true", nil)
		rr := httptest.NewRecorder()

		// when
		router.ServeHTTP(rr, req)

		// then
		require.Equal(t, http.StatusOK, rr.Code)
		var breakdown BreakdownDTO
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&breakdown))
		assert.Equal(t, "nws", breakdown.Method)
		assert.True(t, breakdown.Detailed)
		assert.Equal(t, 33333.33, breakdown.Amount)
		require.Len(t, breakdown.Categories, 3)
		assert.Equal(t, 16666.67, breakdown.Categories[0].Amount)
		require.Len(t, breakdown.Categories[0].Children, 4)
		assert.Len(t, breakdown.Categories[0].Children[0].Children, 2)
	})

	t.Run("should render csv", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/methods/stop/allocation?amount=200000&format=csv", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "text/csv; charset=utf-8", rr.Header().Get("Content-Type"))
		assert.True(t, strings.HasPrefix(rr.Body.String(), "Category,Percentage"))
		assert.Contains(t, rr.Body.String(), "Operations,45.00,45.00,90000.00")
	})

	t.Run("should reject invalid amount", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/methods/nws/allocation?amount=abc", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("should serve the largest finite amount", func(t *testing.T) {
		// given
		req := httptest.NewRequest(http.MethodGet, "/api/methods/nws/allocation?amount=1e308&detailed=true", nil)
		rr := httptest.NewRecorder()

		// when
		router.ServeHTTP(rr, req)

		// then
		require.Equal(t, http.StatusOK, rr.Code)
		var breakdown BreakdownDTO
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&breakdown))
		require.Len(t, breakdown.Categories, 3)
		assert.InEpsilon(t, 5e307, breakdown.Categories[0].Amount, 1e-9)
		assert.Equal(t, 50.0, breakdown.Categories[0].ShareOfTotal)
	})

	t.Run("should reject non-finite amount", func(t *testing.T) {
		for _, amount := range []string{"Inf", "NaN", "1e309"} {
			req := httptest.NewRequest(http.MethodGet, "/api/methods/nws/allocation?format=csv&amount="+amount, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code, amount)
		}
	})

	t.Run("should reject unknown method", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/methods/envelope/allocation?amount=100", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("should clamp negative amount", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/methods/kakeibo/allocation?amount=-10", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var breakdown BreakdownDTO
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&breakdown))
		assert.Zero(t, breakdown.Amount)
	})
}
