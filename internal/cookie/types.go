package cookie

import "time"

// Key is a key within the flow cookie.
type Key string

func (k Key) String() string {
	return string(k)
}

const (
	// State is the key used to store the OAuth2 state parameter
	State Key = "state"

	// ReturnURL is the key used to store the URL to redirect to after authentication
	ReturnURL Key = "returnURL"
)

const (
	// FlowCookieName is the default name of the cookie carrying state between the request and callback phases
	FlowCookieName = "FOURSQUARE"

	// FlowCookieExpiration is the lifetime of the flow cookie
	FlowCookieExpiration = 10 * time.Minute
)

// Values holds the contents of a flow cookie.
type Values struct {
	v map[Key]string
}

// NewValues returns an empty Values.
func NewValues() *Values {
	return &Values{v: make(map[Key]string)}
}

// Set sets key to value and returns the receiver for chaining.
func (v *Values) Set(key Key, value string) *Values {
	v.v[key] = value

	return v
}

// Get returns the value for key, or "" when unset.
func (v *Values) Get(key Key) string {
	return v.v[key]
}
