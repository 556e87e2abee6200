package envelope

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/corpus"
	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/shared"
)

// SealedCodec is a real reversible transform behind the same envelope
// contract: AES-GCM under a key derived from a passphrase. It exists to
// prove the codec boundary holds when the placeholder is swapped out.
//
// Envelope layout after the prefix: base64(nonce || ciphertext).
type SealedCodec struct {
	aead cipher.AEAD
}

// DeriveKey stretches a passphrase into a 32-byte AES key.
func DeriveKey(passphrase, salt []byte) []byte {
	return argon2.IDKey(passphrase, salt, 1, 64*1024, 4, 32)
}

func NewSealedCodec(key []byte) (*SealedCodec, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("sealed codec: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("sealed codec: %w", err)
	}
	return &SealedCodec{aead: aead}, nil
}

func (c *SealedCodec) Encode(plaintext []byte) string {
	nonce := shared.GenerateRandByteArray(c.aead.NonceSize())
	sealed := c.aead.Seal(nonce, nonce, plaintext, nil)
	return Prefix + base64.StdEncoding.EncodeToString(sealed)
}

func (c *SealedCodec) Decode(env string) ([]byte, error) {
	body, ok := strings.CutPrefix(env, Prefix)
	if !ok {
		return []byte(env), nil
	}
	sealed, err := base64.StdEncoding.DecodeString(body)
	if err != nil {
		return nil, fmt.Errorf("%w: bad envelope body: %v", corpus.ErrMalformedData, err)
	}
	if len(sealed) < c.aead.NonceSize() {
		return nil, fmt.Errorf("%w: envelope too short", corpus.ErrMalformedData)
	}
	nonce, ciphertext := sealed[:c.aead.NonceSize()], sealed[c.aead.NonceSize():]
	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", corpus.ErrMalformedData, err)
	}
	return plaintext, nil
}
