package cookie

import (
	"crypto/pbkdf2"
	"crypto/sha256"
	"encoding/base64"

	"github.com/go-playground/errors/v5"
	"github.com/gorilla/securecookie"
)

const (
	minKeyLen        = 96
	deriveIterations = 4096
)

// NewSecureCookie returns the codec of every rolegate cookie. The hash key is
// derived from the first half of the base64 master key and the block key from
// the second half. The master key must decode to at least 96 bytes.
//
// An empty key uses random keys, so cookies do not survive a restart.
func NewSecureCookie(cookieKey string) (*securecookie.SecureCookie, error) {
	if cookieKey == "" {
		hash, block := securecookie.GenerateRandomKey(64), securecookie.GenerateRandomKey(32)
		if hash == nil || block == nil {
			return nil, errors.New("failed to generate random cookie keys")
		}

		return securecookie.New(hash, block), nil
	}

	k, err := base64.StdEncoding.DecodeString(cookieKey)
	if err != nil {
		return nil, errors.Wrap(err, "base64.StdEncoding.DecodeString()")
	}
	if len(k) < minKeyLen {
		return nil, errors.Newf("cookie key too short: got %d bytes, want at least %d", len(k), minKeyLen)
	}

	half := len(k) / 2
	hash, err := pbkdf2.Key(sha256.New, string(k[:half]), []byte("rolegate cookie hash"), deriveIterations, 64)
	if err != nil {
		return nil, errors.Wrap(err, "pbkdf2.Key()")
	}
	block, err := pbkdf2.Key(sha256.New, string(k[half:]), []byte("rolegate cookie block"), deriveIterations, 32)
	if err != nil {
		return nil, errors.Wrap(err, "pbkdf2.Key()")
	}

	return securecookie.New(hash, block), nil
}
