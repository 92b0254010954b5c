package cookie

import (
	"crypto/pbkdf2"
	"crypto/sha256"
	"encoding/base64"

	"github.com/go-playground/errors/v5"
	"github.com/gorilla/securecookie"
)

const (
	minKeyLength = 32
	keyRounds    = 4096
)

// newSecureCookie derives the hash and block keys from a base64 encoded master key.
// An empty cookieKey generates a random key, valid for the life of the process only.
func newSecureCookie(cookieKey string) (*securecookie.SecureCookie, error) {
	var k []byte
	if cookieKey == "" {
		k = securecookie.GenerateRandomKey(64)
		if k == nil {
			return nil, errors.New("failed to generate random key")
		}
	} else {
		var err error
		k, err = base64.StdEncoding.DecodeString(cookieKey)
		if err != nil {
			return nil, errors.Wrap(err, "base64.StdEncoding.DecodeString()")
		}
	}
	if len(k) < minKeyLength {
		return nil, errors.Newf("cookie key too short. Expect minimum of %d bytes", minKeyLength)
	}

	hash, err := pbkdf2.Key(sha256.New, string(k), []byte("foursquare-flow-hash"), keyRounds, 64)
	if err != nil {
		return nil, errors.Wrap(err, "pbkdf2.Key()")
	}

	block, err := pbkdf2.Key(sha256.New, string(k), []byte("foursquare-flow-block"), keyRounds, 32)
	if err != nil {
		return nil, errors.Wrap(err, "pbkdf2.Key()")
	}

	return securecookie.New(hash, block), nil
}
