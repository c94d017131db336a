package tax

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter() *mux.Router {
	handler := NewHandler()
	router := mux.NewRouter()
	router.HandleFunc("/api/tax", handler.Calculate).Methods("GET")
	router.HandleFunc("/api/tax/compare", handler.Compare).Methods("GET")
	router.HandleFunc("/api/tax/strategies", handler.ListStrategies).Methods("GET")
	return router
}

func TestHandler_Calculate(t *testing.T) {
	router := setupRouter()

	t.Run("should calculate tax for old regime", func(t *testing.T) {
		// given
		req := httptest.NewRequest(http.MethodGet, "/api/tax?income=1200000&regime=old", nil)
		rr := httptest.NewRecorder()

		// when
		router.ServeHTTP(rr, req)

		// then
		require.Equal(t, http.StatusOK, rr.Code)
		var result ResultDTO
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&result))
		assert.Equal(t, "old", result.Regime)
		assert.Equal(t, 22500.0, result.Tax)
		assert.Equal(t, 150000.0, result.Deduction)
		assert.Len(t, result.Slabs, 4)
		assert.Nil(t, result.Slabs[3].Upper)
		require.NotNil(t, result.Slabs[0].Upper)
		assert.Equal(t, 250000.0, *result.Slabs[0].Upper)
	})

	t.Run("should default to new regime", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/tax?income=1200000", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var result ResultDTO
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&result))
		assert.Equal(t, "new", result.Regime)
		assert.Equal(t, 90000.0, result.Tax)
		assert.Equal(t, 7.5, result.EffectiveRate)
	})

	t.Run("should reject invalid regime", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/tax?income=1200000&regime=flat", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Invalid regime")
	})

	t.Run("should serve the largest finite income", func(t *testing.T) {
		// given
		req := httptest.NewRequest(http.MethodGet, "/api/tax?income=1e308&regime=old", nil)
		rr := httptest.NewRecorder()

		// when
		router.ServeHTTP(rr, req)

		// then
		require.Equal(t, http.StatusOK, rr.Code)
		var result ResultDTO
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&result))
		assert.InDelta(t, 30, result.EffectiveRate, 0.01)
	})

	t.Run("should reject non-finite income", func(t *testing.T) {
		for _, income := range []string{"Inf", "NaN", "1e309"} {
			req := httptest.NewRequest(http.MethodGet, "/api/tax/compare?income="+income, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code, income)
		}
	})

	t.Run("should reject invalid income", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/tax?income=lots", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Invalid income")
	})
}

func TestHandler_Compare(t *testing.T) {
	router := setupRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/tax/compare?income=1200000", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var comparison ComparisonDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&comparison))
	assert.Equal(t, "old", comparison.Recommended)
	assert.Equal(t, 22500.0, comparison.Old.Tax)
	assert.Equal(t, 90000.0, comparison.New.Tax)
	assert.Equal(t, 67500.0, comparison.Savings)
}

func TestHandler_ListStrategies(t *testing.T) {
	router := setupRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/tax/strategies", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var strategies []StrategyDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&strategies))
	require.Len(t, strategies, 4)
	assert.Equal(t, "80C", strategies[0].Section)
	assert.Equal(t, 150000.0, strategies[0].MaxDeduction)
	assert.Equal(t, 75000.0, strategies[1].MaxDeduction)
}
