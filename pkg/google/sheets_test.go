package google

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/finpercent/finpercent/pkg/allocation"
	"github.com/finpercent/finpercent/pkg/user"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

type fakeSheetsApi struct {
	title  string
	values [][]interface{}
}

func (f *fakeSheetsApi) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/v4/spreadsheets":
		var spreadsheet sheets.Spreadsheet
		_ = json.NewDecoder(r.Body).Decode(&spreadsheet)
		f.title = spreadsheet.Properties.Title
		_, _ = w.Write([]byte(`{"spreadsheetId":"sheet-1","spreadsheetUrl":"https://docs.example.com/sheet-1"}`))
	case r.Method == http.MethodPut && strings.HasPrefix(r.URL.Path, "/v4/spreadsheets/sheet-1/values/"):
		var valueRange sheets.ValueRange
		_ = json.NewDecoder(r.Body).Decode(&valueRange)
		f.values = valueRange.Values
		_, _ = w.Write([]byte(`{}`))
	default:
		http.NotFound(w, r)
	}
}

func setupExport(t *testing.T, authorized bool) (*ServiceImpl, *fakeSheetsApi) {
	api := &fakeSheetsApi{}
	server := httptest.NewServer(api)
	t.Cleanup(server.Close)

	tokens := NewStubTokenRepository()
	if authorized {
		ctx := context.Background()
		require.NoError(t, tokens.StartAuthorization(ctx, 7, "nonce"))
		require.NoError(t, tokens.CompleteAuthorization(ctx, "nonce", &oauth2.Token{AccessToken: "access"}))
	}
	auth := NewGoogleAuth(tokens, fixedUser{user: user.User{Id: 7}}, &fakeOAuthConfig{httpClient: server.Client()})
	return NewService(auth, option.WithEndpoint(server.URL+"/")), api
}

func TestService_ExportAllocation(t *testing.T) {
	ctx := user.WithUser(context.Background(), user.User{Id: 7})
	breakdown, err := allocation.Calculate(allocation.Input{Amount: 200000, Method: allocation.STOP, Detailed: true})
	require.NoError(t, err)

	t.Run("should create spreadsheet with allocation rows", func(t *testing.T) {
		// given
		service, api := setupExport(t, true)

		// when
		spreadsheet, err := service.ExportAllocation(ctx, breakdown)

		// then
		require.NoError(t, err)
		assert.Equal(t, "sheet-1", spreadsheet.Id)
		assert.Equal(t, "https://docs.example.com/sheet-1", spreadsheet.Url)
		assert.Equal(t, "FinPercent stop allocation of 200000.00", api.title)
		require.Len(t, api.values, 6)
		assert.Equal(t, "Category", api.values[0][0])
		assert.Equal(t, "Savings", api.values[1][0])
		assert.Equal(t, 40000.0, api.values[1][4])
		assert.Equal(t, "Total", api.values[5][0])
	})

	t.Run("should require authorization", func(t *testing.T) {
		service, _ := setupExport(t, false)

		_, err := service.ExportAllocation(ctx, breakdown)

		assert.ErrorIs(t, err, ErrUnauthenticated)
	})
}

func TestHandler_ExportAllocation(t *testing.T) {
	service, api := setupExport(t, true)
	router := mux.NewRouter()
	router.HandleFunc("/api/integrations/google/sheets/export", NewHandler(service).ExportAllocation).Methods("POST")
	post := func(query string) *httptest.ResponseRecorder {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/integrations/google/sheets/export?"+query, nil)
		router.ServeHTTP(rr, req.WithContext(user.WithUser(req.Context(), user.User{Id: 7})))
		return rr
	}

	t.Run("should export detailed allocation", func(t *testing.T) {
		rr := post("method=nws&amount=100000")

		require.Equal(t, http.StatusCreated, rr.Code)
		var dto SpreadsheetDTO
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&dto))
		assert.Equal(t, "sheet-1", dto.Id)
		assert.Equal(t, "Necessities", api.values[1][0])
		assert.Equal(t, "Necessities / Housing", api.values[2][0])
	})

	t.Run("should reject unknown method", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, post("method=envelope&amount=1").Code)
	})

	t.Run("should reject invalid amount", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, post("method=nws&amount=lots").Code)
	})
}
