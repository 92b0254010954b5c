package flow

import (
	"context"
	"net/http"

	"github.com/cccteam/foursquare/identity"
)

// Authenticator drives the two phases of the authorization-code flow.
type Authenticator interface {
	// AuthCodeURL returns the URL to redirect to in order to start the authentication process
	AuthCodeURL(ctx context.Context, w http.ResponseWriter, returnURL string) (string, error)

	// Verify processes the callback request and returns:
	//   - the normalized identity for the authenticated user
	//   - the URL to redirect to following successful authentication
	Verify(ctx context.Context, w http.ResponseWriter, r *http.Request) (hash *identity.AuthHash, returnURL string, err error)

	// LoginURL returns the URL to redirect to when an error occurs during the authentication process
	LoginURL() string

	// SetLoginURL sets the URL returned by LoginURL
	SetLoginURL(url string)
}
