package jwt

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("any-secret"))
	require.NoError(t, err)
	return token
}

func TestParser_Subject(t *testing.T) {
	p := NewParser()

	sub, err := p.Subject(signed(t, jwt.RegisteredClaims{Subject: "ops@cadcam.shop"}))
	require.NoError(t, err)
	assert.Equal(t, "ops@cadcam.shop", sub)
}

func TestParser_SubjectMissing(t *testing.T) {
	p := NewParser()

	_, err := p.Subject(signed(t, jwt.RegisteredClaims{Issuer: "storefront"}))
	assert.ErrorIs(t, err, ErrNoSubject)
}

func TestParser_SubjectOpaqueToken(t *testing.T) {
	p := NewParser()

	_, err := p.Subject("demo-token")
	assert.Error(t, err)
}
