// Package flow implements the Foursquare authorization-code flow: state handling, token exchange,
// the profile fetch and its normalization.
package flow

import (
	"context"
	"net/http"
	"strings"
	"unicode"

	"github.com/cccteam/foursquare/identity"
	"github.com/cccteam/foursquare/internal/cookie"
	"github.com/cccteam/foursquare/internal/profile"
	"github.com/cccteam/foursquare/internal/provider"
	"github.com/cccteam/httpio"
	"github.com/go-playground/errors/v5"
	"github.com/gofrs/uuid"
	"go.opentelemetry.io/otel"
)

const name = "github.com/cccteam/foursquare/internal/flow"

const defaultLoginURL = "/login"

var _ Authenticator = &Flow{}

// Flow implements the Authenticator interface for Foursquare.
type Flow struct {
	cookieClient cookie.Handler
	provider     provider.Provider
	fetcher      profile.Fetcher
	loginURL     string
}

// New returns a new Flow
func New(cookieClient cookie.Handler, p provider.Provider, fetcher profile.Fetcher) *Flow {
	return &Flow{
		cookieClient: cookieClient,
		provider:     p,
		fetcher:      fetcher,
	}
}

// SetLoginURL sets the URL to redirect to when an error occurs during the authentication process
func (f *Flow) SetLoginURL(url string) {
	f.loginURL = url
}

// LoginURL returns the URL to redirect to when an error occurs during the authentication process
func (f *Flow) LoginURL() string {
	if f.loginURL == "" {
		return defaultLoginURL
	}

	return f.loginURL
}

// AuthCodeURL returns the URL to redirect to in order to start the authentication process
func (f *Flow) AuthCodeURL(ctx context.Context, w http.ResponseWriter, returnURL string) (string, error) {
	_, span := otel.Tracer(name).Start(ctx, "Flow.AuthCodeURL()")
	defer span.End()

	// Use a random string as the state to protect against CSRF attacks
	state, err := uuid.NewV4()
	if err != nil {
		return "", errors.Wrap(err, "uuid.NewV4()")
	}

	cval := cookie.NewValues().
		Set(cookie.State, state.String()).
		Set(cookie.ReturnURL, localURL(returnURL))

	if err := f.cookieClient.WriteFlowCookie(w, cval); err != nil {
		return "", errors.Wrap(err, "cookie.Handler.WriteFlowCookie()")
	}

	return f.provider.AuthCodeURL(state.String()), nil
}

// Verify processes the callback request. The user profile is fetched at most once per call.
func (f *Flow) Verify(ctx context.Context, w http.ResponseWriter, r *http.Request) (*identity.AuthHash, string, error) {
	ctx, span := otel.Tracer(name).Start(ctx, "Flow.Verify()")
	defer span.End()

	cval, ok := f.cookieClient.ReadFlowCookie(r)
	if !ok {
		return nil, "", httpio.NewForbiddenMessage("No Foursquare flow cookie")
	}
	f.cookieClient.DeleteFlowCookie(w)

	returnURL := localURL(cval.Get(cookie.ReturnURL))

	query := r.URL.Query()

	// Validate state parameter
	if state := cval.Get(cookie.State); state == "" || query.Get("state") != state {
		return nil, "", httpio.NewForbiddenMessage("Invalid 'state' parameter value")
	}

	if e := query.Get("error"); e != "" {
		return nil, "", httpio.NewUnauthorizedMessage("Foursquare authorization failed: " + e)
	}

	code := query.Get("code")
	if code == "" {
		return nil, "", httpio.NewBadRequestMessage("Missing 'code' parameter")
	}

	token, err := f.provider.Exchange(ctx, code)
	if err != nil {
		return nil, "", httpio.NewInternalServerErrorMessageWithError(err, "Failed to exchange token")
	}

	event := profile.NewEvent(f.fetcher, f.provider.Client(ctx, token))

	raw, err := event.Profile(ctx)
	if err != nil {
		return nil, "", httpio.NewInternalServerErrorMessageWithError(err, "Failed to fetch user profile")
	}

	id, err := identity.Normalize(raw)
	if err != nil {
		return nil, "", httpio.NewUnauthorizedMessageWithError(err, "Foursquare profile has no account identifier")
	}

	return id.AuthHash(token), returnURL, nil
}

// localURL restricts return URLs to paths on this host.
// Browsers drop tab, CR and LF while parsing a Location, so any control character is rejected.
func localURL(u string) string {
	u = strings.TrimSpace(u)
	if strings.ContainsFunc(u, unicode.IsControl) {
		return "/"
	}
	if !strings.HasPrefix(u, "/") || strings.HasPrefix(u, "//") || strings.HasPrefix(u, "/\\") {
		return "/"
	}

	return u
}
