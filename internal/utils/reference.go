package utils

import (
	"crypto/rand"
	"math/big"
)

// referenceAlphabet is the character set booking references are drawn
// from: upper and lower case letters plus digits.
const referenceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// NewBookingReference returns a string of length characters drawn
// uniformly at random from the alphanumeric alphabet. Every call is
// independent; the generator performs no uniqueness check against
// existing references — that is the caller's concern, since only the
// caller can see the persisted set.
func NewBookingReference(length int) (string, error) {
	max := big.NewInt(int64(len(referenceAlphabet)))
	buf := make([]byte, length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = referenceAlphabet[n.Int64()]
	}
	return string(buf), nil
}
