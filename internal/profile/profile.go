// Package profile fetches the Foursquare user profile and caches it for one authentication event.
package profile

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/cccteam/foursquare/identity"
	"github.com/go-playground/errors/v5"
	"go.opentelemetry.io/otel"
)

const name = "github.com/cccteam/foursquare/internal/profile"

// SelfURL is the Foursquare endpoint returning the authenticated user.
const SelfURL = "https://api.foursquare.com/v2/users/self"

// APIVersion is sent as the "v" parameter; the v2 API rejects calls without one.
const APIVersion = "20180323"

// maxBodySize bounds the profile response read into memory.
const maxBodySize = 1 << 20

type envelope struct {
	Meta struct {
		Code        int    `json:"code"`
		ErrorType   string `json:"errorType"`
		ErrorDetail string `json:"errorDetail"`
	} `json:"meta"`
	Response *struct {
		User identity.RawProfile `json:"user"`
	} `json:"response"`
}

var _ Fetcher = &Client{}

// Client is the default Fetcher. It performs a single GET against a fixed URL.
type Client struct {
	url string
}

// New returns a Fetcher for the Foursquare users/self endpoint.
func New() *Client {
	return &Client{url: SelfURL}
}

// Fetch performs one authenticated GET and unwraps the response envelope.
func (c *Client) Fetch(ctx context.Context, client *http.Client) (identity.RawProfile, error) {
	ctx, span := otel.Tracer(name).Start(ctx, "Client.Fetch()")
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, http.NoBody)
	if err != nil {
		return nil, errors.Wrap(err, "http.NewRequestWithContext()")
	}
	req.Header.Set("Accept", "application/json")

	q := req.URL.Query()
	if q.Get("v") == "" {
		q.Set("v", APIVersion)
	}
	req.URL.RawQuery = q.Encode()

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "http.Client.Do()")
	}
	defer resp.Body.Close()

	dec := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize))
	dec.UseNumber()

	var env envelope
	decodeErr := dec.Decode(&env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if decodeErr == nil && env.Meta.ErrorType != "" {
			return nil, errors.Newf("users/self returned %d: %s: %s", resp.StatusCode, env.Meta.ErrorType, env.Meta.ErrorDetail)
		}

		return nil, errors.Newf("users/self returned %d", resp.StatusCode)
	}
	if decodeErr != nil {
		return nil, errors.Wrap(decodeErr, "json.Decoder.Decode()")
	}
	if env.Response == nil || env.Response.User == nil {
		return nil, errors.New("users/self response missing response.user")
	}

	return env.Response.User, nil
}

// Event is the profile cache slot for a single authentication event.
// It is not safe for concurrent use and must not outlive the event.
type Event struct {
	fetcher Fetcher
	client  *http.Client

	raw    identity.RawProfile
	loaded bool
}

// NewEvent returns an empty cache slot bound to the event's token-bearing client.
func NewEvent(fetcher Fetcher, client *http.Client) *Event {
	return &Event{fetcher: fetcher, client: client}
}

// Profile returns the event's profile, fetching it on the first call only.
// A failed fetch is not cached.
func (e *Event) Profile(ctx context.Context) (identity.RawProfile, error) {
	if e.loaded {
		return e.raw, nil
	}

	raw, err := e.fetcher.Fetch(ctx, e.client)
	if err != nil {
		return nil, errors.Wrap(err, "Fetcher.Fetch()")
	}

	e.raw, e.loaded = raw, true

	return e.raw, nil
}
