// Package identity maps a Foursquare user profile onto the canonical identity record.
package identity

import (
	"encoding/json"
	"strings"

	"golang.org/x/oauth2"
)

// ProviderName is the strategy name reported in every AuthHash.
const ProviderName = "foursquare_v2"

// Normalize builds an Identity from the provider's user object. It has no side effects.
// Only a missing "id" is an error; every other absent or unexpected value becomes an absent field.
func Normalize(raw RawProfile) (*Identity, error) {
	uid, ok := scalar(raw["id"])
	if !ok {
		return nil, &MissingRequiredFieldError{Field: "id"}
	}

	firstName := str(raw, "firstName")
	lastName := str(raw, "lastName")

	contact := object(raw["contact"])

	return &Identity{
		UID: uid,
		UserInfo: UserInfo{
			Nickname:  str(contact, "twitter"),
			FirstName: firstName,
			LastName:  lastName,
			Email:     str(contact, "email"),
			Name:      strings.TrimSpace(deref(firstName) + " " + deref(lastName)),
			Image:     str(raw, "photo"),
			Phone:     str(contact, "phone"),
			URLs:      map[string]string{},
		},
		Raw: raw,
	}, nil
}

// AuthHash returns the host-facing record for the identity and the token it was fetched with.
func (i *Identity) AuthHash(token *oauth2.Token) *AuthHash {
	h := &AuthHash{
		Provider: ProviderName,
		UID:      i.UID,
		UserInfo: i.UserInfo,
		Extra:    Extra{UserHash: i.Raw},
	}
	if token != nil {
		h.Credentials.Token = token.AccessToken
		if !token.Expiry.IsZero() {
			h.Credentials.ExpiresAt = token.Expiry.Unix()
		}
	}

	return h
}

// str looks up key in m and returns it only when it holds a string. A nil map is valid.
func str(m map[string]any, key string) *string {
	s, ok := m[key].(string)
	if !ok {
		return nil
	}

	return &s
}

func object(v any) map[string]any {
	switch t := v.(type) {
	case map[string]any:
		return t
	case RawProfile:
		return t
	default:
		return nil
	}
}

// scalar accepts non-empty strings and JSON numbers as identifiers.
func scalar(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, t != ""
	case json.Number:
		return t.String(), t.String() != ""
	default:
		return "", false
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
