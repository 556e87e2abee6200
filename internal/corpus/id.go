package corpus

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const idSuffixLen = 7

var base36 = []byte("0123456789abcdefghijklmnopqrstuvwxyz")

// NewID generates a record identifier: the decimal millisecond timestamp,
// a dash, and 7 random base36 characters. Collision probability is treated
// as negligible, not zero; the record store verifies non-existence before
// accepting an id.
func NewID() string {
	return NewIDAt(time.Now())
}

// NewIDAt is NewID with an explicit creation time, for deterministic tests.
func NewIDAt(t time.Time) string {
	suffix := make([]byte, idSuffixLen)
	max := big.NewInt(int64(len(base36)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand failing means the platform RNG is broken;
			// nothing sensible to return.
			panic(err)
		}
		suffix[i] = base36[n.Int64()]
	}
	return fmt.Sprintf("%d-%s", t.UnixMilli(), suffix)
}
