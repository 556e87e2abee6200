// Package reveal implements the challenge/signature gate that must succeed
// before a record's payload is decoded for display.
//
// The signature is neither persisted nor verified by any server: there is no
// verifier collaborator in this design. Its sole role is a local, explicit
// proof-of-control step before the client decodes: a trust-on-first-use
// consent gate, not a cryptographic access-control guarantee.
package reveal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/corpus"
	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/envelope"
	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/identity"
	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/logging"
	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/registry"
	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/shared"
)

// publicKeyMaterialBytes is the amount of random key material generated per
// session (hex doubles it in the challenge text).
const publicKeyMaterialBytes = 1000

// Session is the stable per-session context tuple the challenge is built
// from. It is generated once at application start and held for the
// session's lifetime, so repeated challenges are byte-identical.
type Session struct {
	PublicKeyMaterial   string
	StoreEndpointID     string
	NetworkID           int64
	ValidityWindowStart int64 // unix seconds
	ValidityWindowDays  int
}

// NewSession builds the session context, generating fresh public key
// material and pinning the validity window start to now.
func NewSession(endpointID string, networkID int64, validityDays int) (*Session, error) {
	pk, err := shared.MakeRandHexString(publicKeyMaterialBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to generate public key material: %w", err)
	}
	return &Session{
		PublicKeyMaterial:   "0x" + pk,
		StoreEndpointID:     endpointID,
		NetworkID:           networkID,
		ValidityWindowStart: time.Now().Unix(),
		ValidityWindowDays:  validityDays,
	}, nil
}

// Challenge renders the deterministic, human-readable message to sign:
// fixed field order, one "name:value" per line. Determinism lets a future
// verifier reconstruct the expected message from the session parameters.
func (s *Session) Challenge() string {
	return fmt.Sprintf(
		"publickey:%s\ncontractAddresses:%s\ncontractsChainId:%d\nstartTimestamp:%d\ndurationDays:%d",
		s.PublicKeyMaterial, s.StoreEndpointID, s.NetworkID, s.ValidityWindowStart, s.ValidityWindowDays)
}

// Protocol gates payload decoding behind a signature over the session
// challenge.
type Protocol struct {
	session  *Session
	codec    envelope.Codec
	provider identity.Provider
	log      logging.Logger

	// Delay paces the step between signature and decode by PostSignDelay;
	// zero disables it.
	Delay         registry.DelayPolicy
	PostSignDelay time.Duration
}

func NewProtocol(session *Session, codec envelope.Codec, provider identity.Provider, log logging.Logger) *Protocol {
	return &Protocol{
		session:  session,
		codec:    codec,
		provider: provider,
		log:      log,
		Delay:    registry.Sleep,
	}
}

// Reveal returns the record's plaintext, but only after the identity
// provider signs this session's challenge in this very call. There is no
// caching of proved state: hiding and re-revealing a record re-runs the
// signature step, keeping the consent gate meaningful.
//
// No active identity yields corpus.ErrUnauthorized before anything else; a
// declined or failed signature yields corpus.ErrDenied and never a partial
// plaintext.
func (p *Protocol) Reveal(ctx context.Context, rec *corpus.Record) ([]byte, error) {
	if _, err := p.provider.Current(); err != nil {
		return nil, err
	}

	challenge := p.session.Challenge()
	if _, err := p.provider.SignMessage(ctx, challenge); err != nil {
		p.log.Warn(ctx, "reveal signature refused", "id", rec.ID, "error", err)
		if errors.Is(err, corpus.ErrUnauthorized) || errors.Is(err, corpus.ErrDenied) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", corpus.ErrDenied, err)
	}

	if err := p.Delay(ctx, p.PostSignDelay); err != nil {
		return nil, fmt.Errorf("%w: %v", corpus.ErrDenied, err)
	}

	return p.codec.Decode(rec.EncryptedData)
}
