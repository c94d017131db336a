package google

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/finpercent/finpercent/pkg/user"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

type fakeOAuthConfig struct {
	token       *oauth2.Token
	exchangeErr error
	httpClient  *http.Client
}

func (f *fakeOAuthConfig) AuthCodeURL(state string, _ ...oauth2.AuthCodeOption) string {
	return "https://accounts.example.com/auth?state=" + url.QueryEscape(state)
}

func (f *fakeOAuthConfig) Exchange(_ context.Context, _ string, _ ...oauth2.AuthCodeOption) (*oauth2.Token, error) {
	if f.exchangeErr != nil {
		return nil, f.exchangeErr
	}
	return f.token, nil
}

func (f *fakeOAuthConfig) Client(_ context.Context, _ *oauth2.Token) *http.Client {
	if f.httpClient != nil {
		return f.httpClient
	}
	return http.DefaultClient
}

type fixedUser struct {
	user user.User
	err  error
}

func (f fixedUser) GetCurrentUser(context.Context) (user.User, error) {
	return f.user, f.err
}

func setupAuth(oauthConfig *fakeOAuthConfig) (*GoogleAuth, *StubTokenRepository, *mux.Router) {
	tokens := NewStubTokenRepository()
	auth := NewGoogleAuth(tokens, fixedUser{user: user.User{Id: 7}}, oauthConfig)
	router := mux.NewRouter()
	router.HandleFunc("/api/integrations/google/auth/login", auth.OAuthLogin).Methods("GET")
	router.HandleFunc("/api/integrations/google/auth/callback", auth.OAuthCallback).Methods("GET")
	router.HandleFunc("/api/integrations/google/auth/logout", auth.OAuthLogout).Methods("DELETE")
	return auth, tokens, router
}

func login(t *testing.T, router *mux.Router, finalUrl string) string {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet,
		"/api/integrations/google/auth/login?finalUrl="+url.QueryEscape(finalUrl), nil))
	require.Equal(t, http.StatusOK, rr.Code)
	var redirect googleAuthRedirect
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&redirect))
	u, err := url.Parse(redirect.RedirectUrl)
	require.NoError(t, err)
	return u.Query().Get("state")
}

func TestGoogleAuth_Flow(t *testing.T) {
	t.Run("should store token after callback", func(t *testing.T) {
		// given
		token := &oauth2.Token{AccessToken: "access", RefreshToken: "refresh", Expiry: time.Now().Add(time.Hour)}
		auth, tokens, router := setupAuth(&fakeOAuthConfig{token: token})
		state := login(t, router, "http://localhost:5173/settings")

		// when
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet,
			"/api/integrations/google/auth/callback?code=abc&state="+url.QueryEscape(state), nil))

		// then
		require.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "http://localhost:5173/settings?success=true", rr.Header().Get("Location"))
		stored, err := tokens.GetToken(context.Background(), 7)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, "access", stored.AccessToken)
		client, err := auth.client(context.Background(), 7)
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("should redirect with failure when exchange fails", func(t *testing.T) {
		_, tokens, router := setupAuth(&fakeOAuthConfig{exchangeErr: errors.New("denied")})
		state := login(t, router, "http://localhost:5173/settings")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet,
			"/api/integrations/google/auth/callback?code=abc&state="+url.QueryEscape(state), nil))

		require.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "http://localhost:5173/settings?success=false", rr.Header().Get("Location"))
		stored, err := tokens.GetToken(context.Background(), 7)
		require.NoError(t, err)
		assert.Nil(t, stored)
	})

	t.Run("should reject unknown nonce", func(t *testing.T) {
		_, _, router := setupAuth(&fakeOAuthConfig{token: &oauth2.Token{AccessToken: "access"}})

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet,
			"/api/integrations/google/auth/callback?code=abc&state="+url.QueryEscape("http://app|forged"), nil))

		require.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "http://app?success=false", rr.Header().Get("Location"))
	})

	t.Run("should reject malformed state", func(t *testing.T) {
		_, _, router := setupAuth(&fakeOAuthConfig{})

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/integrations/google/auth/callback?code=abc&state=nope", nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestGoogleAuth_Logout(t *testing.T) {
	_, tokens, router := setupAuth(&fakeOAuthConfig{})
	ctx := context.Background()
	require.NoError(t, tokens.StartAuthorization(ctx, 7, "n"))
	require.NoError(t, tokens.CompleteAuthorization(ctx, "n", &oauth2.Token{AccessToken: "access"}))

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/integrations/google/auth/logout", nil)
	router.ServeHTTP(rr, req.WithContext(user.WithUser(req.Context(), user.User{Id: 7})))

	assert.Equal(t, http.StatusNoContent, rr.Code)
	stored, err := tokens.GetToken(ctx, 7)
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestGoogleAuth_LoginWithoutUser(t *testing.T) {
	auth := NewGoogleAuth(NewStubTokenRepository(), fixedUser{err: user.ErrNoUser}, &fakeOAuthConfig{})

	rr := httptest.NewRecorder()
	auth.OAuthLogin(rr, httptest.NewRequest(http.MethodGet, "/api/integrations/google/auth/login", nil))

	assert.Equal(t, http.StatusForbidden, rr.Code)
}
