package identity

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/ed25519"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/crypto/argon2"

	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/shared"
)

// keyFile is the on-disk form of a sealed identity key: argon2id parameters
// are fixed, so only the salt, nonce and sealed seed are stored.
type keyFile struct {
	Salt   []byte `json:"salt"`
	Nonce  []byte `json:"nonce"`
	Sealed []byte `json:"sealed"`
}

const keyFileSaltLen = 16

func deriveFileKey(passphrase, salt []byte) []byte {
	return argon2.IDKey(passphrase, salt, 1, 64*1024, 4, 32)
}

// SaveKeyFile seals the provider's private seed under the passphrase and
// writes it to path with owner-only permissions.
func (p *LocalProvider) SaveKeyFile(path string, passphrase []byte) error {
	salt := shared.GenerateRandByteArray(keyFileSaltLen)
	key := deriveFileKey(passphrase, salt)
	defer shared.WipeByteArray(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return fmt.Errorf("failed to seal key: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return fmt.Errorf("failed to seal key: %w", err)
	}

	nonce := shared.GenerateRandByteArray(aead.NonceSize())
	sealed := aead.Seal(nil, nonce, p.priv.Seed(), nil)

	data, err := json.Marshal(keyFile{Salt: salt, Nonce: nonce, Sealed: sealed})
	if err != nil {
		return fmt.Errorf("failed to encode key file: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write key file: %w", err)
	}
	return nil
}

// LoadKeyFile opens a sealed key file and reconstructs the provider.
// A wrong passphrase fails at the AEAD open step.
func LoadKeyFile(path string, passphrase []byte) (*LocalProvider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read key file: %w", err)
	}

	var kf keyFile
	if err := json.Unmarshal(data, &kf); err != nil {
		return nil, fmt.Errorf("failed to parse key file: %w", err)
	}

	key := deriveFileKey(passphrase, kf.Salt)
	defer shared.WipeByteArray(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to open key file: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to open key file: %w", err)
	}

	seed, err := aead.Open(nil, kf.Nonce, kf.Sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to unseal key (wrong passphrase?): %w", err)
	}
	defer shared.WipeByteArray(seed)

	priv := ed25519.NewKeyFromSeed(seed)
	pub := priv.Public().(ed25519.PublicKey)
	return &LocalProvider{addr: DeriveAddress(pub), priv: priv}, nil
}
