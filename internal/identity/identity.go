// Package identity abstracts the wallet-like signer a contributor acts as.
//
// The registry only ever sees an address string and a signature capability;
// key management stays behind the Provider interface.
package identity

import (
	"context"

	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/corpus"
)

// Provider supplies the current identity and its signing capability.
type Provider interface {
	// Current returns the active identity's address, or
	// corpus.ErrUnauthorized when no identity session is active.
	Current() (string, error)

	// SignMessage asks the identity to sign msg. A declined or failed
	// signature returns corpus.ErrDenied; msg is signed as raw bytes.
	SignMessage(ctx context.Context, msg string) ([]byte, error)
}

// None is a Provider with no active session. Every call fails with
// corpus.ErrUnauthorized.
type None struct{}

func (None) Current() (string, error) { return "", corpus.ErrUnauthorized }

func (None) SignMessage(ctx context.Context, msg string) ([]byte, error) {
	return nil, corpus.ErrUnauthorized
}
