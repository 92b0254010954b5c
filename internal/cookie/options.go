package cookie

// Option defines a function signature for setting cookie client options.
type Option func(*Client)

// WithCookieName sets the name of the flow cookie.
func WithCookieName(name string) Option {
	return Option(func(c *Client) {
		c.cookieName = name
	})
}

// WithCookieDomain sets the domain of the flow cookie.
func WithCookieDomain(domain string) Option {
	return Option(func(c *Client) {
		c.domain = domain
	})
}
