// Package envelope turns record payloads into opaque strings and back.
//
// The codec is an abstraction boundary: callers treat the output as an
// opaque envelope, so a real encryption primitive can replace the default
// transform without any caller changes.
package envelope

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/corpus"
)

// Prefix marks a string as an encoded envelope. A value without the prefix
// is treated as plaintext, for backward compatibility with unencoded input.
const Prefix = "FHE-"

// Codec is a reversible byte-to-string transform. Decode(Encode(p)) == p
// must hold for every byte sequence p.
type Codec interface {
	Encode(plaintext []byte) string
	Decode(envelope string) ([]byte, error)
}

// PrefixCodec is the placeholder transform: the literal prefix followed by
// the base64 form of the plaintext. It makes no assumptions about payload
// structure beyond byte identity.
type PrefixCodec struct{}

func NewPrefixCodec() *PrefixCodec { return &PrefixCodec{} }

func (c *PrefixCodec) Encode(plaintext []byte) string {
	return Prefix + base64.StdEncoding.EncodeToString(plaintext)
}

func (c *PrefixCodec) Decode(env string) ([]byte, error) {
	body, ok := strings.CutPrefix(env, Prefix)
	if !ok {
		// Legacy plaintext value.
		return []byte(env), nil
	}
	b, err := base64.StdEncoding.DecodeString(body)
	if err != nil {
		return nil, fmt.Errorf("%w: bad envelope body: %v", corpus.ErrMalformedData, err)
	}
	return b, nil
}
