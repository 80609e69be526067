// Package signing binds requester keys to the ed25519 nkeys used across the
// NATS ecosystem. Public keys travel as their encoded string form ("U...").
package signing

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/nats-io/nkeys"
)

var ErrBadSignature = errors.New("signature verification failed")

// Verifier checks a signature over message made by the holder of publicKey.
type Verifier interface {
	Verify(publicKey, message, signature []byte) error
}

// NKeyVerifier verifies ed25519 signatures made with nkeys user keys.
type NKeyVerifier struct{}

func (NKeyVerifier) Verify(publicKey, message, signature []byte) error {
	kp, err := nkeys.FromPublicKey(string(publicKey))
	if err != nil {
		return fmt.Errorf("public key: %w", err)
	}
	if err := kp.Verify(message, signature); err != nil {
		return fmt.Errorf("%w: %v", ErrBadSignature, err)
	}
	return nil
}

// KeySigner signs with a private nkey seed.
type KeySigner struct {
	kp  nkeys.KeyPair
	pub []byte
}

// NewKeySigner creates a fresh user key pair.
func NewKeySigner() (*KeySigner, error) {
	kp, err := nkeys.CreateUser()
	if err != nil {
		return nil, err
	}
	return newKeySigner(kp)
}

// SignerFromSeed loads a signer from an encoded seed ("SU...").
func SignerFromSeed(seed []byte) (*KeySigner, error) {
	kp, err := nkeys.FromSeed([]byte(strings.TrimSpace(string(seed))))
	if err != nil {
		return nil, err
	}
	return newKeySigner(kp)
}

// SignerFromFile reads a seed written by `circuitctl keygen`.
func SignerFromFile(path string) (*KeySigner, error) {
	seed, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return SignerFromSeed(seed)
}

func newKeySigner(kp nkeys.KeyPair) (*KeySigner, error) {
	pub, err := kp.PublicKey()
	if err != nil {
		return nil, err
	}
	return &KeySigner{kp: kp, pub: []byte(pub)}, nil
}

func (s *KeySigner) PublicKey() []byte { return append([]byte(nil), s.pub...) }

func (s *KeySigner) Sign(msg []byte) ([]byte, error) {
	return s.kp.Sign(msg)
}

func (s *KeySigner) Seed() ([]byte, error) {
	return s.kp.Seed()
}
