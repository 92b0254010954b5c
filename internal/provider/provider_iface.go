package provider

import (
	"context"
	"net/http"

	"golang.org/x/oauth2"
)

// Provider drives the authorization-code exchange against Foursquare.
type Provider interface {
	AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string
	Exchange(ctx context.Context, code string, opts ...oauth2.AuthCodeOption) (*oauth2.Token, error)
	Client(ctx context.Context, token *oauth2.Token) *http.Client
}
