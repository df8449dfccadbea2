package impl

import (
	"crypto/rand"
	"encoding/base64"
	"math/big"
)

// newURLSafeToken returns a URL-safe random string carrying n bytes of
// entropy. Used for reset tokens and the 2FA secret material.
func newURLSafeToken(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

var ten = big.NewInt(10)

// newNumericCode returns n uniformly random digits from crypto/rand. The
// codes gate authentication, so the cheap math/rand source is not enough.
func newNumericCode(n int) (string, error) {
	digits := make([]byte, n)
	for i := range digits {
		d, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + d.Int64())
	}
	return string(digits), nil
}
