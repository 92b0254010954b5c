package foursquare

import (
	"net/http"

	"github.com/cccteam/foursquare/internal/cookie"
	"github.com/cccteam/foursquare/internal/provider"
)

// Option defines the interface for functional options used when creating a new Strategy.
type Option interface {
	isOption()
}

// CookieOption defines a function signature for setting flow cookie options.
type CookieOption func(*cookie.Client)

func (CookieOption) isOption() {}

// WithCookieName sets the name of the flow cookie. (default: FOURSQUARE)
func WithCookieName(name string) CookieOption {
	return CookieOption(cookie.WithCookieName(name))
}

// WithCookieDomain sets the domain of the flow cookie.
func WithCookieDomain(domain string) CookieOption {
	return CookieOption(cookie.WithCookieDomain(domain))
}

// ParamOption defines a function signature for setting the parameters sent to Foursquare.
type ParamOption func(*provider.Params)

func (ParamOption) isOption() {}

// WithDisplay sets the display hint passed to the authorize URL. (default: touch)
func WithDisplay(display string) ParamOption {
	return ParamOption(func(p *provider.Params) {
		p.Display = display
	})
}

// WithResponseType sets the response_type of the authorize redirect. (default: code)
func WithResponseType(responseType string) ParamOption {
	return ParamOption(func(p *provider.Params) {
		p.ResponseType = responseType
	})
}

// WithGrantType sets the grant_type of the token exchange. (default: authorization_code)
func WithGrantType(grantType string) ParamOption {
	return ParamOption(func(p *provider.Params) {
		p.GrantType = grantType
	})
}

type transport struct {
	httpClient *http.Client
	fetcher    ProfileFetcher
}

// TransportOption defines a function signature for setting how Foursquare is reached.
type TransportOption func(*transport)

func (TransportOption) isOption() {}

// WithHTTPClient sets the client used for the token exchange and the profile fetch. (default: http.DefaultClient)
func WithHTTPClient(c *http.Client) TransportOption {
	return TransportOption(func(t *transport) {
		t.httpClient = c
	})
}

// WithProfileFetcher replaces the users/self fetcher.
func WithProfileFetcher(f ProfileFetcher) TransportOption {
	return TransportOption(func(t *transport) {
		t.fetcher = f
	})
}

// StrategyOption defines a function signature for setting Strategy options.
type StrategyOption func(*Strategy)

func (StrategyOption) isOption() {}

// WithLoginURL sets the URL users are sent to when authentication fails. (default: /login)
func WithLoginURL(l string) StrategyOption {
	return StrategyOption(func(s *Strategy) {
		s.flow.SetLoginURL(l)
	})
}

// WithLogHandler sets the LogHandler.
func WithLogHandler(l LogHandler) StrategyOption {
	return StrategyOption(func(s *Strategy) {
		s.handle = l
	})
}
