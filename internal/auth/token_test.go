package auth

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPasetoKey = bytes.Repeat([]byte("k"), 32)

func newTokenServices(t *testing.T) map[string]TokenService {
	t.Helper()

	pasetoSvc, err := NewPasetoService(testPasetoKey)
	require.NoError(t, err)

	jwtSvc, err := NewJWTService([]byte("test-jwt-secret"))
	require.NoError(t, err)

	return map[string]TokenService{
		"paseto": pasetoSvc,
		"jwt":    jwtSvc,
	}
}

func TestTokenRoundTrip(t *testing.T) {
	for name, svc := range newTokenServices(t) {
		t.Run(name, func(t *testing.T) {
			token, err := svc.CreateToken(42, "ann@x.com", time.Hour)
			require.NoError(t, err)
			require.NotEmpty(t, token)

			claims, err := svc.VerifyToken(token)
			require.NoError(t, err)

			assert.Equal(t, int64(42), claims.UserID)
			assert.Equal(t, "ann@x.com", claims.Email)
			assert.NotEmpty(t, claims.TokenID)
			assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, time.Minute)
		})
	}
}

func TestTokenUniqueIDs(t *testing.T) {
	for name, svc := range newTokenServices(t) {
		t.Run(name, func(t *testing.T) {
			first, err := svc.CreateToken(1, "a@x.com", time.Hour)
			require.NoError(t, err)
			second, err := svc.CreateToken(1, "a@x.com", time.Hour)
			require.NoError(t, err)

			firstClaims, err := svc.VerifyToken(first)
			require.NoError(t, err)
			secondClaims, err := svc.VerifyToken(second)
			require.NoError(t, err)

			assert.NotEqual(t, firstClaims.TokenID, secondClaims.TokenID)
		})
	}
}

func TestTokenExpired(t *testing.T) {
	for name, svc := range newTokenServices(t) {
		t.Run(name, func(t *testing.T) {
			token, err := svc.CreateToken(42, "ann@x.com", -time.Minute)
			require.NoError(t, err)

			claims, err := svc.VerifyToken(token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestTokenMalformed(t *testing.T) {
	for name, svc := range newTokenServices(t) {
		t.Run(name, func(t *testing.T) {
			claims, err := svc.VerifyToken("not-a-token")
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}

func TestTokenWrongKeyRejected(t *testing.T) {
	pasetoSvc, err := NewPasetoService(testPasetoKey)
	require.NoError(t, err)
	otherPaseto, err := NewPasetoService(bytes.Repeat([]byte("x"), 32))
	require.NoError(t, err)

	token, err := pasetoSvc.CreateToken(1, "a@x.com", time.Hour)
	require.NoError(t, err)

	_, err = otherPaseto.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	jwtSvc, err := NewJWTService([]byte("secret-one"))
	require.NoError(t, err)
	otherJWT, err := NewJWTService([]byte("secret-two"))
	require.NoError(t, err)

	token, err = jwtSvc.CreateToken(1, "a@x.com", time.Hour)
	require.NoError(t, err)

	_, err = otherJWT.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTExpiredDistinguished(t *testing.T) {
	svc, err := NewJWTService([]byte("test-jwt-secret"))
	require.NoError(t, err)

	token, err := svc.CreateToken(42, "ann@x.com", -time.Minute)
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestCrossDriverTokensRejected(t *testing.T) {
	services := newTokenServices(t)

	pasetoToken, err := services["paseto"].CreateToken(1, "a@x.com", time.Hour)
	require.NoError(t, err)
	jwtToken, err := services["jwt"].CreateToken(1, "a@x.com", time.Hour)
	require.NoError(t, err)

	_, err = services["jwt"].VerifyToken(pasetoToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = services["paseto"].VerifyToken(jwtToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewPasetoServiceRejectsShortKey(t *testing.T) {
	_, err := NewPasetoService([]byte("too-short"))
	assert.Error(t, err)
}

func TestNewJWTServiceRejectsEmptySecret(t *testing.T) {
	_, err := NewJWTService(nil)
	assert.Error(t, err)
}
