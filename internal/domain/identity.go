package domain

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
)

// IdentityLen is the width of a caller identity in bytes. Identities are
// raw ed25519 public keys, so holders can prove ownership by signing.
const IdentityLen = ed25519.PublicKeySize

// Identity is a fixed-width account identity. It is comparable, usable as a
// map key and renders as lowercase hex on the wire.
type Identity [IdentityLen]byte

// IdentityFromBytes copies b into an Identity, rejecting wrong widths.
func IdentityFromBytes(b []byte) (Identity, error) {
	var id Identity
	if len(b) != IdentityLen {
		return id, fmt.Errorf("identity must be %d bytes, got %d", IdentityLen, len(b))
	}
	copy(id[:], b)
	return id, nil
}

// ParseIdentity decodes the hex form produced by String.
func ParseIdentity(s string) (Identity, error) {
	var id Identity
	b, err := hex.DecodeString(s)
	if err != nil {
		return id, fmt.Errorf("identity is not valid hex: %w", err)
	}
	return IdentityFromBytes(b)
}

func (id Identity) String() string {
	return hex.EncodeToString(id[:])
}

func (id Identity) Bytes() []byte {
	return id[:]
}

func (id Identity) IsZero() bool {
	return id == Identity{}
}

// PublicKey exposes the identity as a key usable for signature checks.
func (id Identity) PublicKey() ed25519.PublicKey {
	return ed25519.PublicKey(id[:])
}

// MarshalText lets identities travel as hex strings in JSON payloads.
func (id Identity) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *Identity) UnmarshalText(text []byte) error {
	parsed, err := ParseIdentity(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
