package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJWT_GenerateAndValidate(t *testing.T) {
	ctx := context.Background()
	j := New("test-secret", time.Minute)

	token, err := j.Generate(ctx, "C-7")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	assert.NoError(t, j.Validate(ctx, token))

	claims, err := j.GetClaims(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, "C-7", claims.CustomerID)
}

func TestJWT_Expired(t *testing.T) {
	ctx := context.Background()
	j := New("test-secret", -time.Minute)

	token, err := j.Generate(ctx, "C-7")
	assert.NoError(t, err)

	assert.Error(t, j.Validate(ctx, token))
}

func TestJWT_WrongSecret(t *testing.T) {
	ctx := context.Background()
	j := New("test-secret", time.Minute)
	other := New("other-secret", time.Minute)

	token, err := j.Generate(ctx, "C-7")
	assert.NoError(t, err)

	assert.Error(t, other.Validate(ctx, token))
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	ctx := context.Background()
	j := New("test-secret", time.Minute)

	r, _ := http.NewRequest(http.MethodGet, "/", nil)

	_, err := j.GetTokenFromRequest(ctx, r)
	assert.Error(t, err, "missing header should fail")

	r.Header.Set("Authorization", "Token abc")
	_, err = j.GetTokenFromRequest(ctx, r)
	assert.Error(t, err, "non-bearer scheme should fail")

	r.Header.Set("Authorization", "Bearer abc")
	token, err := j.GetTokenFromRequest(ctx, r)
	assert.NoError(t, err)
	assert.Equal(t, "abc", token)
}
