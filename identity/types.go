package identity

// RawProfile is the user object returned by Foursquare, decoded with json.Number for numeric values.
type RawProfile map[string]any

// Identity is the canonical identity record built from a RawProfile.
type Identity struct {
	UID      string
	UserInfo UserInfo
	Raw      RawProfile
}

// UserInfo holds the normalized profile fields. A nil pointer means the provider did not supply the value.
type UserInfo struct {
	Nickname  *string           `json:"nickname"`
	FirstName *string           `json:"first_name"`
	LastName  *string           `json:"last_name"`
	Email     *string           `json:"email"`
	Name      string            `json:"name"`
	Image     *string           `json:"image"`
	Phone     *string           `json:"phone"`
	URLs      map[string]string `json:"urls"`
}

// Credentials describes the access token that produced the identity.
type Credentials struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at,omitempty"`
}

// Extra carries provider specific data not covered by UserInfo.
type Extra struct {
	UserHash RawProfile `json:"user_hash"`
}

// AuthHash is the record handed to the host once authentication completes.
type AuthHash struct {
	Provider    string      `json:"provider"`
	UID         string      `json:"uid"`
	UserInfo    UserInfo    `json:"user_info"`
	Credentials Credentials `json:"credentials"`
	Extra       Extra       `json:"extra"`
}
