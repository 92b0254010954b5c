package foursquare

import (
	"context"
	"net/http"

	"github.com/cccteam/foursquare/identity"
)

var _ Handlers = &Strategy{}

// Handlers defines the HTTP handlers the host mounts for the Foursquare flow.
type Handlers interface {
	Login() http.HandlerFunc
	Callback() http.HandlerFunc
}

// IdentityConsumer receives the identity of every successfully authenticated user.
// The host starts its session here; a returned error aborts the login.
type IdentityConsumer interface {
	Authenticated(ctx context.Context, w http.ResponseWriter, r *http.Request, hash *identity.AuthHash) error
}

// ProfileFetcher retrieves the Foursquare user object using a token-bearing client.
// It has the same method set as the built-in users/self fetcher, which it replaces when set.
type ProfileFetcher interface {
	Fetch(ctx context.Context, client *http.Client) (identity.RawProfile, error)
}
