package identity

import (
	"context"
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/corpus"
	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/shared"
)

// LocalProvider holds an ed25519 keypair in process. The address is derived
// from the public key, so the same key file always yields the same identity.
//
// Confirm, when set, is consulted before every signature with the message
// about to be signed; returning false models the user declining in a wallet
// prompt and surfaces as corpus.ErrDenied.
type LocalProvider struct {
	addr    string
	priv    ed25519.PrivateKey
	Confirm func(msg string) bool
}

// NewLocalProvider generates a fresh keypair.
func NewLocalProvider() (*LocalProvider, error) {
	pub, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate keypair: %w", err)
	}
	return &LocalProvider{addr: DeriveAddress(pub), priv: priv}, nil
}

// DeriveAddress maps a public key to a wallet-style address: 0x followed by
// the first 20 bytes of the key's SHA-256 digest, hex encoded.
func DeriveAddress(pub ed25519.PublicKey) string {
	sum := sha256.Sum256(pub)
	return "0x" + hex.EncodeToString(sum[:20])
}

func (p *LocalProvider) Current() (string, error) {
	if p == nil || p.priv == nil {
		return "", corpus.ErrUnauthorized
	}
	return p.addr, nil
}

func (p *LocalProvider) SignMessage(ctx context.Context, msg string) ([]byte, error) {
	if p == nil || p.priv == nil {
		return nil, corpus.ErrUnauthorized
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", corpus.ErrDenied, err)
	}
	if p.Confirm != nil && !p.Confirm(msg) {
		return nil, corpus.ErrDenied
	}
	return ed25519.Sign(p.priv, []byte(msg)), nil
}

// PublicKey exposes the verifying key so a future verifier collaborator can
// check signatures against the challenge.
func (p *LocalProvider) PublicKey() ed25519.PublicKey {
	return p.priv.Public().(ed25519.PublicKey)
}

// Close wipes the private key material. The provider is unusable afterwards.
func (p *LocalProvider) Close() {
	shared.WipeByteArray(p.priv)
	p.priv = nil
}
