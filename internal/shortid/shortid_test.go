package shortid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	for i := 0; i < 1000; i++ {
		id := New()
		assert.Len(t, id, Length)
		for _, c := range id {
			assert.True(t, strings.ContainsRune(alphabet, c), "unexpected character %q in %q", c, id)
		}
	}
}
