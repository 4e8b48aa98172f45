package token

import (
	"crypto/ed25519"
	"crypto/rand"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedboard-dev/feedboard/internal/domain"
)

func genKey(t *testing.T) (domain.Identity, ed25519.PrivateKey) {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	id, err := domain.IdentityFromBytes(pub)
	require.NoError(t, err)
	return id, priv
}

func TestSignVerify(t *testing.T) {
	id, priv := genKey(t)

	jwtStr, err := Sign(priv, time.Minute)
	require.NoError(t, err)

	got, err := Verify(jwtStr)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestVerify_Expired(t *testing.T) {
	_, priv := genKey(t)

	jwtStr, err := Sign(priv, -time.Minute)
	require.NoError(t, err)

	_, err = Verify(jwtStr)
	assert.Error(t, err)
}

func TestVerify_Tampered(t *testing.T) {
	_, priv := genKey(t)

	jwtStr, err := Sign(priv, time.Minute)
	require.NoError(t, err)

	_, err = Verify(jwtStr[:len(jwtStr)-2])
	assert.Error(t, err)
}

func TestVerify_WrongMethod(t *testing.T) {
	id, _ := genKey(t)

	claims := jwt.MapClaims{
		"pub": id.String(),
		"exp": time.Now().Add(time.Minute).Unix(),
	}
	jwtStr, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = Verify(jwtStr)
	assert.Error(t, err)
}

func TestVerify_MissingPubClaim(t *testing.T) {
	_, priv := genKey(t)

	claims := jwt.MapClaims{"exp": time.Now().Add(time.Minute).Unix()}
	jwtStr, err := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims).SignedString(priv)
	require.NoError(t, err)

	_, err = Verify(jwtStr)
	assert.Error(t, err)
}

func TestVerify_KeyMismatch(t *testing.T) {
	// Claimed identity differs from the signing key, so the signature
	// cannot check out against the claimed key.
	other, _ := genKey(t)
	_, priv := genKey(t)

	claims := jwt.MapClaims{
		"pub": other.String(),
		"exp": time.Now().Add(time.Minute).Unix(),
	}
	jwtStr, err := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims).SignedString(priv)
	require.NoError(t, err)

	_, err = Verify(jwtStr)
	assert.Error(t, err)
}

func TestVerify_NoExpiry(t *testing.T) {
	id, priv := genKey(t)

	claims := jwt.MapClaims{"pub": id.String()}
	jwtStr, err := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims).SignedString(priv)
	require.NoError(t, err)

	_, err = Verify(jwtStr)
	assert.Error(t, err)
}
