package financial_data

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/finpercent/finpercent/pkg/user"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler(t *testing.T) {
	service, _, _ := setupService()
	handler := NewHandler(service)
	router := mux.NewRouter()
	router.HandleFunc("/api/user/current/financial-data", handler.Store).Methods("PUT")
	router.HandleFunc("/api/user/current/financial-data", handler.Get).Methods("GET")
	router.HandleFunc("/api/user/current/financial-data", handler.Delete).Methods("DELETE")
	withUser := func(r *http.Request) *http.Request {
		return r.WithContext(user.WithUser(r.Context(), user.User{Id: 42}))
	}

	t.Run("should return 404 before anything is stored", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, withUser(httptest.NewRequest(http.MethodGet, "/api/user/current/financial-data", nil)))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("should store and read snapshot", func(t *testing.T) {
		body := `{"income":90000,"expenses":{"rent":25000,"food":8000.5},"savings":18000,"investments":{"index fund":5000}}`
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, withUser(httptest.NewRequest(http.MethodPut, "/api/user/current/financial-data",
			bytes.NewBufferString(body))))
		require.Equal(t, http.StatusOK, rr.Code)

		rr = httptest.NewRecorder()
		router.ServeHTTP(rr, withUser(httptest.NewRequest(http.MethodGet, "/api/user/current/financial-data", nil)))

		require.Equal(t, http.StatusOK, rr.Code)
		var dto FinancialDataDTO
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&dto))
		assert.Equal(t, 90000.0, dto.Income)
		assert.Equal(t, 33000.5, dto.TotalExpenses)
		assert.Equal(t, 20.0, dto.SavingsRate)
		require.NotNil(t, dto.CreatedAt)
		assert.Equal(t, now, dto.CreatedAt.UTC())
	})

	t.Run("should reject negative income", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, withUser(httptest.NewRequest(http.MethodPut, "/api/user/current/financial-data",
			bytes.NewBufferString(`{"income":-1}`))))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("should delete snapshot", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, withUser(httptest.NewRequest(http.MethodDelete, "/api/user/current/financial-data", nil)))
		assert.Equal(t, http.StatusNoContent, rr.Code)

		rr = httptest.NewRecorder()
		router.ServeHTTP(rr, withUser(httptest.NewRequest(http.MethodDelete, "/api/user/current/financial-data", nil)))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
