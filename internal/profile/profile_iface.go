package profile

import (
	"context"
	"net/http"

	"github.com/cccteam/foursquare/identity"
)

// Fetcher retrieves the authenticated user's profile using a token-bearing client.
type Fetcher interface {
	Fetch(ctx context.Context, client *http.Client) (identity.RawProfile, error)
}
