package google

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/finpercent/finpercent/internal/config"
	"github.com/finpercent/finpercent/internal/rest"
	"github.com/finpercent/finpercent/pkg/user"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/sheets/v4"
)

const CallbackPath = "/api/integrations/google/auth/callback"

// OAuthConfig is the part of oauth2.Config used by GoogleAuth.
type OAuthConfig interface {
	AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string
	Exchange(ctx context.Context, code string, opts ...oauth2.AuthCodeOption) (*oauth2.Token, error)
	Client(ctx context.Context, t *oauth2.Token) *http.Client
}

type googleAuthRedirect struct {
	RedirectUrl string `json:"redirectUrl"`
}

type GoogleAuth struct {
	tokens      TokenRepository
	users       user.Provider
	oauthConfig OAuthConfig
}

func NewOAuthConfig(cfg config.Application) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.Google.ClientId,
		ClientSecret: cfg.Google.ClientSecret,
		Endpoint:     google.Endpoint,
		RedirectURL:  strings.TrimSuffix(cfg.Host, "/") + CallbackPath,
		Scopes:       []string{sheets.SpreadsheetsScope},
	}
}

func NewGoogleAuth(tokens TokenRepository, users user.Provider, oauthConfig OAuthConfig) *GoogleAuth {
	return &GoogleAuth{tokens: tokens, users: users, oauthConfig: oauthConfig}
}

// OAuthLogin godoc
// @Summary Start Google authorization
// @Description Returns the Google consent URL. After consent the browser is sent back to finalUrl.
// @Tags Google
// @Produce json
// @Param finalUrl query string false "URL to return to after authorization"
// @Success 200 {object} googleAuthRedirect
// @Router /api/integrations/google/auth/login [get]
func (g *GoogleAuth) OAuthLogin(w http.ResponseWriter, r *http.Request) {
	currentUser, err := g.users.GetCurrentUser(r.Context())
	if err != nil {
		log.Error("unable to retrieve current user: ", err)
		rest.WriteError(w, http.StatusForbidden, "Unable to retrieve current user", "")
		return
	}

	nonce := uuid.New().String()
	if err := g.tokens.StartAuthorization(r.Context(), currentUser.Id, nonce); err != nil {
		rest.WriteError(w, http.StatusInternalServerError, "Failed to handle Google authentication", "")
		return
	}

	finalUrl := r.URL.Query().Get("finalUrl")
	log.Tracef("Redirecting to Google auth URL with nonce: %s", nonce)
	redirect := g.oauthConfig.AuthCodeURL(finalUrl+"|"+nonce, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
	rest.WriteJSON(w, http.StatusOK, googleAuthRedirect{RedirectUrl: redirect})
}

// OAuthCallback godoc
// @Summary Google authorization callback
// @Tags Google
// @Param code query string true "Authorization code"
// @Param state query string true "State created by the login endpoint"
// @Success 302
// @Router /api/integrations/google/auth/callback [get]
func (g *GoogleAuth) OAuthCallback(w http.ResponseWriter, r *http.Request) {
	code := r.FormValue("code")
	finalUrl, nonce, found := strings.Cut(r.FormValue("state"), "|")
	if !found || nonce == "" {
		rest.WriteError(w, http.StatusBadRequest, "Invalid state", "")
		return
	}

	token, err := g.oauthConfig.Exchange(r.Context(), code)
	if err != nil {
		log.Errorf("unable to exchange code for token: %v", err)
		http.Redirect(w, r, withSuccess(finalUrl, false), http.StatusFound)
		return
	}
	if err := g.tokens.CompleteAuthorization(r.Context(), nonce, token); err != nil {
		log.Errorf("unable to store Google token: %v", err)
		http.Redirect(w, r, withSuccess(finalUrl, false), http.StatusFound)
		return
	}
	log.Debug("Stored Google token for nonce: ", nonce)
	http.Redirect(w, r, withSuccess(finalUrl, true), http.StatusFound)
}

// OAuthLogout godoc
// @Summary Forget the Google authorization
// @Tags Google
// @Success 204
// @Router /api/integrations/google/auth/logout [delete]
func (g *GoogleAuth) OAuthLogout(w http.ResponseWriter, r *http.Request) {
	userId, err := user.CurrentId(r.Context())
	if err != nil {
		log.Error("unable to retrieve current user: ", err)
		rest.WriteError(w, http.StatusForbidden, "Unable to retrieve current user", "")
		return
	}
	if err := g.tokens.Delete(r.Context(), userId); err != nil {
		rest.WriteError(w, http.StatusInternalServerError, "Failed to handle Google authentication", "")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// client returns nil when the user has not authorized Google yet.
func (g *GoogleAuth) client(ctx context.Context, userId int) (*http.Client, error) {
	token, err := g.tokens.GetToken(ctx, userId)
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, nil
	}
	return g.oauthConfig.Client(ctx, token), nil
}

func withSuccess(finalUrl string, success bool) string {
	u, err := url.Parse(finalUrl)
	if err != nil {
		u = &url.URL{Path: "/"}
	}
	q := u.Query()
	if success {
		q.Set("success", "true")
	} else {
		q.Set("success", "false")
	}
	u.RawQuery = q.Encode()
	return u.String()
}
