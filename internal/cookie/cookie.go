// Package cookie stores the OAuth2 flow state between the request and callback phases.
package cookie

import (
	"net/http"
	"time"

	"github.com/cccteam/logger"
	"github.com/go-playground/errors/v5"
	"github.com/gorilla/securecookie"
)

// Client reads and writes the encrypted flow cookie.
type Client struct {
	secureCookie *securecookie.SecureCookie
	cookieName   string
	domain       string
}

// NewClient returns a Client keyed from cookieKey, a base64 string of at least 32 random bytes.
func NewClient(cookieKey string, options ...Option) (*Client, error) {
	sc, err := newSecureCookie(cookieKey)
	if err != nil {
		return nil, errors.Wrap(err, "newSecureCookie()")
	}

	c := &Client{
		secureCookie: sc.MaxAge(int(FlowCookieExpiration / time.Second)),
		cookieName:   FlowCookieName,
	}
	for _, opt := range options {
		opt(c)
	}

	return c, nil
}

// WriteFlowCookie encodes values into the flow cookie.
func (c *Client) WriteFlowCookie(w http.ResponseWriter, values *Values) error {
	encoded, err := c.secureCookie.Encode(c.cookieName, values.v)
	if err != nil {
		return errors.Wrap(err, "securecookie.Encode()")
	}

	// SameSite=Lax so the cookie survives the top-level redirect back from Foursquare
	http.SetCookie(w, &http.Cookie{
		Name:     c.cookieName,
		Expires:  time.Now().Add(FlowCookieExpiration),
		Value:    encoded,
		Path:     "/",
		Domain:   c.domain,
		Secure:   secureCookie(),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// ReadFlowCookie decodes the flow cookie. found is false when it is absent, expired or tampered with.
func (c *Client) ReadFlowCookie(r *http.Request) (values *Values, found bool) {
	cookie, err := r.Cookie(c.cookieName)
	if err != nil {
		return NewValues(), false
	}

	values = NewValues()
	if err := c.secureCookie.Decode(c.cookieName, cookie.Value, &values.v); err != nil {
		logger.Req(r).Error(errors.Wrap(err, "securecookie.Decode()"))

		return NewValues(), false
	}

	return values, true
}

// DeleteFlowCookie expires the flow cookie.
func (c *Client) DeleteFlowCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.cookieName,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		Path:     "/",
		Domain:   c.domain,
		Secure:   secureCookie(),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
