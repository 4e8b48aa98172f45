// Package token issues and verifies the self-certifying identity tokens
// accepted by the HTTP API.
//
// A token is signed with the caller's own Ed25519 key and carries the hex
// public key in the "pub" claim. Verification recovers the key from the
// claim and checks the signature against it, so no key registry is needed:
// a valid signature proves control of the identity it names.
package token

import (
	"crypto/ed25519"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/feedboard-dev/feedboard/internal/domain"
)

const pubClaim = "pub"

// Sign issues a token for the identity behind priv, valid for ttl.
func Sign(priv ed25519.PrivateKey, ttl time.Duration) (string, error) {
	pub, ok := priv.Public().(ed25519.PublicKey)
	if !ok {
		return "", errors.New("not an ed25519 private key")
	}
	id, err := domain.IdentityFromBytes(pub)
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := jwt.MapClaims{
		pubClaim: id.String(),
		"iat":    now.Unix(),
		"exp":    now.Add(ttl).Unix(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims).SignedString(priv)
}

// Verify checks jwtStr against the key embedded in its "pub" claim and
// returns the identity that key encodes.
func Verify(jwtStr string) (domain.Identity, error) {
	var id domain.Identity
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		// Verify signing algorithm
		if _, ok := token.Method.(*jwt.SigningMethodEd25519); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return nil, errors.New("unexpected claims type")
		}
		raw, ok := claims[pubClaim].(string)
		if !ok {
			return nil, errors.New("missing pub claim")
		}
		parsed, err := domain.ParseIdentity(raw)
		if err != nil {
			return nil, err
		}
		id = parsed
		return parsed.PublicKey(), nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return domain.Identity{}, err
	}
	if !token.Valid {
		return domain.Identity{}, errors.New("invalid token")
	}

	return id, nil
}
