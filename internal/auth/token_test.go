package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"sharknutrition-backend/internal/models"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	admin := &models.Admin{ID: primitive.NewObjectID(), Username: "admin", Name: "Admin"}

	token, err := NewToken(secret, admin)
	require.NoError(t, err)

	claims, err := ParseToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID.Hex(), claims.ID)
	assert.Equal(t, "admin", claims.Username)
	assert.True(t, claims.IsAdmin)
}

func TestParseTokenWrongSecret(t *testing.T) {
	admin := &models.Admin{ID: primitive.NewObjectID(), Username: "admin"}

	token, err := NewToken([]byte("right"), admin)
	require.NoError(t, err)

	_, err = ParseToken([]byte("wrong"), token)
	require.Error(t, err)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := ParseToken([]byte("secret"), "not.a.token")
	require.Error(t, err)
}
