// Package provider holds the OAuth2 client configuration for Foursquare.
package provider

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/errors/v5"
	"golang.org/x/oauth2"
)

const (
	// Site is the base URL of the Foursquare OAuth2 endpoints.
	Site = "https://foursquare.com/oauth2"

	authorizePath = "/authenticate"
	tokenPath     = "/access_token"

	exchangeTimeout = 5 * time.Second
)

const (
	defaultDisplay      = "touch"
	defaultResponseType = "code"
	defaultGrantType    = "authorization_code"
)

// Endpoint is the Foursquare authorize and token endpoint pair.
var Endpoint = oauth2.Endpoint{
	AuthURL:   Site + authorizePath,
	TokenURL:  Site + tokenPath,
	AuthStyle: oauth2.AuthStyleInParams,
}

// Params are the request parameters the strategy adds to each phase of the flow.
type Params struct {
	// Display is passed through to the authorize URL. (default: touch)
	Display string
	// ResponseType is sent on the authorize redirect. (default: code)
	ResponseType string
	// GrantType is sent on the token exchange. (default: authorization_code)
	GrantType string
}

// Merge returns a copy of p with defaults filled in for every value the caller left empty.
func (p Params) Merge() Params {
	if p.Display == "" {
		p.Display = defaultDisplay
	}
	if p.ResponseType == "" {
		p.ResponseType = defaultResponseType
	}
	if p.GrantType == "" {
		p.GrantType = defaultGrantType
	}

	return p
}

var _ Provider = &provider{}

type provider struct {
	config     oauth2.Config
	params     Params
	httpClient *http.Client
}

// New returns a Provider for the Foursquare endpoints. params are merged with their defaults once, here.
// A nil httpClient uses http.DefaultClient.
func New(clientID, clientSecret, redirectURL string, params Params, httpClient *http.Client) Provider {
	return &provider{
		config: oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Endpoint:     Endpoint,
		},
		params:     params.Merge(),
		httpClient: httpClient,
	}
}

// AuthCodeURL returns the URL to redirect to in order to start the authorization-code flow.
func (p *provider) AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string {
	opts = append([]oauth2.AuthCodeOption{
		oauth2.SetAuthURLParam("response_type", p.params.ResponseType),
		oauth2.SetAuthURLParam("display", p.params.Display),
	}, opts...)

	return p.config.AuthCodeURL(state, opts...)
}

// Exchange exchanges the authorization code for an access token.
func (p *provider) Exchange(ctx context.Context, code string, opts ...oauth2.AuthCodeOption) (*oauth2.Token, error) {
	expire, cancel := context.WithTimeoutCause(p.context(ctx), exchangeTimeout, errors.New("oauth2.Config.Exchange() timeout"))
	defer cancel()

	opts = append([]oauth2.AuthCodeOption{oauth2.SetAuthURLParam("grant_type", p.params.GrantType)}, opts...)

	t, err := p.config.Exchange(expire, code, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "oauth2.Config.Exchange()")
	}

	return t, nil
}

// Client returns an HTTP client that authenticates requests with token.
func (p *provider) Client(ctx context.Context, token *oauth2.Token) *http.Client {
	return p.config.Client(p.context(ctx), token)
}

func (p *provider) context(ctx context.Context) context.Context {
	if p.httpClient == nil {
		return ctx
	}

	return context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)
}
