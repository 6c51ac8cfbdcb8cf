// Package shortid generates the public identifiers embedded in short links.
package shortid

import "math/rand"

const (
	alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// Length is the size of every generated identifier.
	Length = 6
)

// New returns a fresh identifier drawn uniformly from the alphanumeric
// alphabet. Uniqueness is not checked here; the store's primary key
// constraint is the backstop.
func New() string {
	buf := make([]byte, Length)
	for i := range buf {
		buf[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return string(buf)
}
