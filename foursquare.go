// Package foursquare authenticates users against Foursquare v2 with the OAuth2 authorization-code flow
// and hands the host a normalized identity record.
package foursquare

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/cccteam/foursquare/identity"
	"github.com/cccteam/foursquare/internal/cookie"
	"github.com/cccteam/foursquare/internal/flow"
	"github.com/cccteam/foursquare/internal/profile"
	"github.com/cccteam/foursquare/internal/provider"
	"github.com/cccteam/httpio"
	"github.com/cccteam/logger"
	"github.com/go-playground/errors/v5"
	"go.opentelemetry.io/otel"
)

const name = "github.com/cccteam/foursquare"

// Strategy implements the Handlers interface for Foursquare authentication.
type Strategy struct {
	consumer IdentityConsumer
	flow     flow.Authenticator
	handle   LogHandler
}

// New creates a new Strategy.
// cookieKey: A Base64-encoded string representing at least 32 bytes
// of cryptographically secure random data. An empty key generates a random one.
func New(
	consumer IdentityConsumer,
	cookieKey string,
	clientID, clientSecret, redirectURL string,
	options ...Option,
) (*Strategy, error) {
	if consumer == nil {
		return nil, errors.New("foursquare: IdentityConsumer is required")
	}
	if clientID == "" || clientSecret == "" || redirectURL == "" {
		return nil, errors.New("foursquare: client id, client secret and redirect url are required")
	}

	var (
		cookieOpts []cookie.Option
		params     provider.Params
		t          = &transport{}
	)
	for _, opt := range options {
		switch o := opt.(type) {
		case CookieOption:
			cookieOpts = append(cookieOpts, cookie.Option(o))
		case ParamOption:
			o(&params)
		case TransportOption:
			o(t)
		}
	}

	cookieClient, err := cookie.NewClient(cookieKey, cookieOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "cookie.NewClient()")
	}

	fetcher := t.fetcher
	if fetcher == nil {
		fetcher = profile.New()
	}

	s := &Strategy{
		consumer: consumer,
		flow:     flow.New(cookieClient, provider.New(clientID, clientSecret, redirectURL, params, t.httpClient), fetcher),
		handle:   handle,
	}

	for _, opt := range options {
		if o, ok := opt.(StrategyOption); ok {
			o(s)
		}
	}

	return s, nil
}

// Login is the request phase handler. It redirects the user to the Foursquare authorize URL.
func (s *Strategy) Login() http.HandlerFunc {
	return s.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := otel.Tracer(name).Start(r.Context(), "Strategy.Login()")
		defer span.End()

		returnURL := r.URL.Query().Get("returnUrl")
		authCodeURL, err := s.flow.AuthCodeURL(ctx, w, returnURL)
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, err)
		}

		http.Redirect(w, r, authCodeURL, http.StatusFound)

		return nil
	})
}

// Callback is the handler for the redirect back from Foursquare.
func (s *Strategy) Callback() http.HandlerFunc {
	return s.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := otel.Tracer(name).Start(r.Context(), "Strategy.Callback()")
		defer span.End()

		hash, returnURL, err := s.flow.Verify(ctx, w, r)
		if err != nil {
			s.redirectToLogin(w, r, httpio.Message(err))

			return errors.Wrap(err, "flow.Authenticator.Verify()")
		}

		// user is successfully authenticated, hand the identity to the host
		if err := s.consumer.Authenticated(ctx, w, r, hash); err != nil {
			msg := "Internal Server Error"
			if !httpio.CauseIsError(err) {
				msg = httpio.Message(err)
			}
			s.redirectToLogin(w, r, msg)

			return errors.Wrap(err, "IdentityConsumer.Authenticated()")
		}

		logger.Req(r).Infof("Foursquare user %s authenticated", hash.UID)

		http.Redirect(w, r, returnURL, http.StatusFound)

		return nil
	})
}

func (s *Strategy) redirectToLogin(w http.ResponseWriter, r *http.Request, message string) {
	http.Redirect(w, r, fmt.Sprintf("%s?message=%s", s.flow.LoginURL(), url.QueryEscape(message)), http.StatusFound)
}

// API provides programatic access to Strategy
func (s *Strategy) API() *StrategyAPI {
	return &StrategyAPI{strategy: s}
}

// StrategyAPI provides programatic access to Strategy
type StrategyAPI struct {
	strategy *Strategy
}

// AuthCodeURL writes the flow cookie and returns the Foursquare authorize URL.
func (a *StrategyAPI) AuthCodeURL(ctx context.Context, w http.ResponseWriter, returnURL string) (string, error) {
	u, err := a.strategy.flow.AuthCodeURL(ctx, w, returnURL)
	if err != nil {
		return "", errors.Wrap(err, "flow.Authenticator.AuthCodeURL()")
	}

	return u, nil
}

// Verify processes a callback request and returns the authenticated identity and the return URL.
// It does not call the IdentityConsumer.
func (a *StrategyAPI) Verify(ctx context.Context, w http.ResponseWriter, r *http.Request) (*identity.AuthHash, string, error) {
	hash, returnURL, err := a.strategy.flow.Verify(ctx, w, r)
	if err != nil {
		return nil, "", errors.Wrap(err, "flow.Authenticator.Verify()")
	}

	return hash, returnURL, nil
}
